package common

import (
	"testing"

	"github.com/matryer/is"
)

type signaturetestpair struct {
	word      string
	signature string
}

var signatureTests = []signaturetestpair{
	{"FIREFANG", "aeffginr"},
	{"QAJAQ", "aajqq"},
	{"EROTICA", "aceiort"},
	{"MuuMuus", "mmsuuuu"},
	{"privat-dozent", "adeinoprttvz"},
	{"can't", "acnt"},
	{"Tea2", "aet"},
	{"1234", ""},
	{"", ""},
	{"héllo", "hllo"},
}

func TestSignature(t *testing.T) {
	for _, pair := range signatureTests {
		sig := Signature(pair.word)
		if sig != pair.signature {
			t.Error("For", pair.word, "expected", pair.signature, "got", sig)
		}
	}
}

func TestSignaturePermutationInvariant(t *testing.T) {
	is := is.New(t)
	perms := []string{"listen", "silent", "enlist", "tinsel", "INLETS", "s-i-l-e-n-t"}
	for _, p := range perms {
		is.Equal(Signature(p), "eilnst")
	}
}

func TestSignatureIdempotent(t *testing.T) {
	is := is.New(t)
	for _, pair := range signatureTests {
		sig := Signature(pair.word)
		is.Equal(Signature(sig), sig)
	}
}

func TestEncodeDecode(t *testing.T) {
	is := is.New(t)
	letters := Encode("aez")
	is.Equal(letters, []Letter{0, 4, 25})
	is.Equal(Decode(append(letters, Boundary)), "aez")
}

func TestIsSubSignature(t *testing.T) {
	is := is.New(t)
	is.True(IsSubSignature("at", "aet"))
	is.True(IsSubSignature("", "aet"))
	is.True(!IsSubSignature("aat", "aet"))
	is.True(!IsSubSignature("x", "aet"))
}
