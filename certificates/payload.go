/*
Package certificates implements the governance certificates carried in
transactions and the payload/authorization contract they share.

A certificate kind produces two independent canonical byte strings: the
payload body (what the certificate states) and the authorization value
(what proves the issuer may state it). Keeping the two apart lets binding
signatures be computed and verified without hashing the certificate body
itself.
*/
package certificates

import (
	"github.com/midgard-chain/midgard/codec"
)

type (
	// Payload is the contract implemented by every certificate kind.
	// The kind set is closed, implementations live in this package only.
	Payload interface {
		// HasData reports whether the certificate kind carries a body.
		HasData() bool
		// HasAuth reports whether the certificate kind requires an
		// authorization value.
		HasAuth() bool

		writeData(w *codec.Writer)
	}

	// Auth is an authorization value of a certificate kind.
	Auth interface {
		writeAuth(w *codec.Writer)
	}

	// PayloadData is the canonical body of certificate kind T. The type
	// parameter binds the buffer to the kind it was produced from and has
	// no runtime representation beyond the bytes themselves.
	PayloadData[T Payload] struct {
		data []byte
	}

	// PayloadAuthData is the canonical bytes of an authorization value of
	// certificate kind T, produced independently of the payload body.
	PayloadAuthData[T Payload] struct {
		data []byte
	}

	// CertificateSlice is an untyped view of an encoded certificate for
	// embedding into a transaction.
	CertificateSlice struct {
		data []byte
	}
)

// NewPayloadData produces the canonical body of the certificate.
func NewPayloadData[T Payload](cert T) PayloadData[T] {
	w := codec.NewWriter()
	cert.writeData(w)
	return PayloadData[T]{data: w.Bytes()}
}

// NewPayloadAuthData produces the canonical bytes of an authorization
// value of certificate kind T.
func NewPayloadAuthData[T Payload](auth Auth) PayloadAuthData[T] {
	w := codec.NewWriter()
	auth.writeAuth(w)
	return PayloadAuthData[T]{data: w.Bytes()}
}

// ToCertificateSlice projects a typed payload into an untyped certificate
// byte slice.
func ToCertificateSlice[T Payload](d PayloadData[T]) CertificateSlice {
	return CertificateSlice{data: d.data}
}

func (d PayloadData[T]) Bytes() []byte {
	return d.data
}

func (d PayloadAuthData[T]) Bytes() []byte {
	return d.data
}

func (s CertificateSlice) Bytes() []byte {
	return s.data
}
