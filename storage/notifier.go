package storage

// Notifier receives the storage key after every successful save so
// interested observers (the websocket channel in production) can tell
// clients to reload. Injected rather than ambient so repositories stay
// testable with a recording fake.
type Notifier interface {
	StorageChanged(key string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(key string)

func (f NotifierFunc) StorageChanged(key string) {
	f(key)
}

// NopNotifier discards change notifications.
var NopNotifier = NotifierFunc(func(string) {})
