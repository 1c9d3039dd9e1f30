package domain

import "fmt"

// OperationKind enumerates the asynchronous operations a resource supports.
// Each kind owns exactly one OperationStatus per resource.
type OperationKind int

const (
	OpFetchList OperationKind = iota + 1
	OpFetchOne
	OpCreate
	OpUpdate
	OpDelete
	OpTransition
	OpFetchByKey
)

// Kinds lists every operation kind in declaration order.
func Kinds() []OperationKind {
	return []OperationKind{OpFetchList, OpFetchOne, OpCreate, OpUpdate, OpDelete, OpTransition, OpFetchByKey}
}

func (k OperationKind) String() string {
	switch k {
	case OpFetchList:
		return "fetch-list"
	case OpFetchOne:
		return "fetch-one"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpTransition:
		return "transition-status"
	case OpFetchByKey:
		return "fetch-by-key"
	default:
		return fmt.Sprintf("operation(%d)", int(k))
	}
}

// ParseOperationKind is the inverse of String.
func ParseOperationKind(s string) (OperationKind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown operation kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k OperationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ErrorInfo is what an OperationStatus keeps of a failure.
type ErrorInfo struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Fields  []string  `json:"fields,omitempty"`
}

// OperationStatus is the in-flight/error/success bookkeeping of one operation kind.
//
//	start:     {InFlight: true,  Error: nil, Succeeded: false}
//	fulfilled: {InFlight: false, Error: nil, Succeeded: true}
//	rejected:  {InFlight: false, Error: E,   Succeeded: false}
type OperationStatus struct {
	InFlight  bool       `json:"inFlight"`
	Error     *ErrorInfo `json:"error"`
	Succeeded bool       `json:"succeeded"`
}

// Started returns the status of a call that just began.
func Started() OperationStatus {
	return OperationStatus{InFlight: true}
}

// Fulfilled returns the status of a call that succeeded.
func Fulfilled() OperationStatus {
	return OperationStatus{Succeeded: true}
}

// Rejected returns the status of a call that failed with info.
func Rejected(info ErrorInfo) OperationStatus {
	return OperationStatus{Error: &info}
}

// Acknowledged clears error and success without touching InFlight.
func (s OperationStatus) Acknowledged() OperationStatus {
	return OperationStatus{InFlight: s.InFlight}
}
