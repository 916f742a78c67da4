package types

import (
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

const (
	MethodAck       Method = "ACK"
	MethodBye       Method = "BYE"
	MethodCancel    Method = "CANCEL"
	MethodInfo      Method = "INFO"
	MethodInvite    Method = "INVITE"
	MethodMessage   Method = "MESSAGE"
	MethodNotify    Method = "NOTIFY"
	MethodOptions   Method = "OPTIONS"
	MethodPrack     Method = "PRACK"
	MethodPublish   Method = "PUBLISH"
	MethodRefer     Method = "REFER"
	MethodRegister  Method = "REGISTER"
	MethodSubscribe Method = "SUBSCRIBE"
	MethodUpdate    Method = "UPDATE"
)

var knownMethods = []Method{
	MethodAck,
	MethodBye,
	MethodCancel,
	MethodInfo,
	MethodInvite,
	MethodMessage,
	MethodNotify,
	MethodOptions,
	MethodPrack,
	MethodPublish,
	MethodRefer,
	MethodRegister,
	MethodSubscribe,
	MethodUpdate,
}

// Method is a SIP request method.
// It holds either one of the known methods in canonical upper case
// or an extension method kept verbatim.
type Method string

// ParseMethod returns the canonical known method matching s case-insensitively,
// or s unchanged when it names an extension method.
func ParseMethod[T ~string](s T) Method {
	if m, ok := lookupMethod(string(s)); ok {
		return m
	}
	return Method(s)
}

func lookupMethod(s string) (Method, bool) {
	for _, m := range knownMethods {
		if util.EqFold(m, s) {
			return m, true
		}
	}
	return "", false
}

// IsKnown reports whether m is one of the methods defined by the SIP RFCs.
func (m Method) IsKnown() bool {
	_, ok := lookupMethod(string(m))
	return ok
}

// ToUpper returns the upper-case form of m.
func (m Method) ToUpper() Method { return util.UCase(m) }

// IsValid reports whether m is a non-empty token.
func (m Method) IsValid() bool { return grammar.IsToken(m) }

// Equal compares m with val.
// Known methods compare by symbol, extension methods compare byte by byte,
// a known method never equals an extension one.
func (m Method) Equal(val any) bool {
	var other Method
	switch v := val.(type) {
	case Method:
		other = v
	case *Method:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	km, mok := lookupMethod(string(m))
	ko, ook := lookupMethod(string(other))
	switch {
	case mok && ook:
		return km == ko
	case mok || ook:
		return false
	default:
		return m == other
	}
}

func (m Method) String() string { return string(m) }
