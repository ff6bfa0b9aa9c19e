package log

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type Log interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	With(fields ...Field) Log
	Sync() error
}

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

type Field struct {
	Key   string
	Type  FieldType
	Value any
}

// A FieldType says which zap constructor a Field maps to.
type FieldType uint8

const (
	UnknownType FieldType = iota
	BoolType
	Float32Type
	IntType
	StringType
	ErrorType
	Vec3Type
	Mat4Type
)

func Any(key string, val any) Field {
	return Field{Key: key, Type: UnknownType, Value: val}
}

func Bool(key string, val bool) Field {
	return Field{Key: key, Type: BoolType, Value: val}
}

func Float32(key string, val float32) Field {
	return Field{Key: key, Type: Float32Type, Value: val}
}

func Int(key string, val int) Field {
	return Field{Key: key, Type: IntType, Value: val}
}

func String(key string, val string) Field {
	return Field{Key: key, Type: StringType, Value: val}
}

func Err(err error) Field {
	return Field{Key: "error", Type: ErrorType, Value: err}
}

func Vec3(key string, val mgl32.Vec3) Field {
	return Field{Key: key, Type: Vec3Type, Value: val}
}

// Mat4 logs the matrix as its four columns.
func Mat4(key string, val mgl32.Mat4) Field {
	return Field{Key: key, Type: Mat4Type, Value: val}
}
