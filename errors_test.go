package kuku

import (
	"errors"
	"testing"
)

func TestErrorTaxonomy(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		isDomain   bool
		isAuth     bool
		isNotFound bool
	}{
		{"domain", Domainf("insufficient balance"), true, false, false},
		{"auth", Authf("please login first"), true, true, false},
		{"not found", NotFoundf("unknown user: bob"), true, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errors.Is(tc.err, ErrDomain); got != tc.isDomain {
				t.Errorf("errors.Is(err, ErrDomain) = %v, want %v", got, tc.isDomain)
			}
			if got := errors.Is(tc.err, ErrAuth); got != tc.isAuth {
				t.Errorf("errors.Is(err, ErrAuth) = %v, want %v", got, tc.isAuth)
			}
			if got := errors.Is(tc.err, ErrNotFound); got != tc.isNotFound {
				t.Errorf("errors.Is(err, ErrNotFound) = %v, want %v", got, tc.isNotFound)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := NotFoundf("unknown ticker: %s", "XXXX")
	if got, want := err.Error(), "unknown ticker: XXXX"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
