package logging

import (
	"time"

	"go.uber.org/zap"
)

// String constructs a field with the given key and value.
func String(key, val string) zap.Field {
	return zap.String(key, val)
}

// Strings constructs a field with the given key and slice of strings.
func Strings(key string, val []string) zap.Field {
	return zap.Strings(key, val)
}

// Int constructs a field with the given key and value.
func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

// Int64 constructs a field with the given key and value.
func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

// Uint64 constructs a field with the given key and value.
func Uint64(key string, val uint64) zap.Field {
	return zap.Uint64(key, val)
}

// Bool constructs a field with the given key and value.
func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

// Duration constructs a field with the given key and value.
func Duration(key string, val time.Duration) zap.Field {
	return zap.Duration(key, val)
}

// Error constructs a field that carries an error.
func Error(err error) zap.Field {
	return zap.Error(err)
}

// Reflect constructs a field with the given key and an arbitrary object.
func Reflect(key string, val interface{}) zap.Field {
	return zap.Reflect(key, val)
}

// PoolID constructs a field with the pool identifier.
func PoolID(id string) zap.Field {
	return zap.String("pool-id", id)
}

// OrderKeyID constructs a field with the order-key digest.
func OrderKeyID(id string) zap.Field {
	return zap.String("order-key", id)
}

// Party constructs a field with a party identifier.
func Party(id string) zap.Field {
	return zap.String("party", id)
}

// Tick constructs a field with a pool tick.
func Tick(tick int64) zap.Field {
	return zap.Int64("tick", tick)
}
