package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind represents the type of VK account
type Kind string

const (
	KindPersonal  Kind = "personal"
	KindCommunity Kind = "community"
)

// hostPrefixes are stripped from a reference before its kind is inspected
var hostPrefixes = []string{
	"https://vk.com/",
	"http://vk.com/",
	"https://m.vk.com/",
	"http://m.vk.com/",
	"vk.com/",
}

// communityPrefixes mark club and public page references
var communityPrefixes = []string{"club", "public"}

// Account is a classified account reference
type Account struct {
	Ref   string `json:"ref"`
	Kind  Kind   `json:"kind"`
	RawID int64  `json:"raw_id"` // digits of the reference, never negated
}

// IsCommunity returns true for club and public page accounts
func (a Account) IsCommunity() bool {
	return a.Kind == KindCommunity
}

// OwnerID returns the signed id VK uses for walls: communities are negative
func (a Account) OwnerID() int64 {
	if a.IsCommunity() {
		return -a.RawID
	}
	return a.RawID
}

// Classify returns the account kind of a reference
func Classify(ref string) Kind {
	account := ref
	for _, prefix := range hostPrefixes {
		if strings.HasPrefix(account, prefix) {
			account = strings.TrimPrefix(account, prefix)
			break
		}
	}

	for _, prefix := range communityPrefixes {
		if strings.HasPrefix(account, prefix) {
			return KindCommunity
		}
	}
	return KindPersonal
}

// RawID extracts the number formed by all digits of the reference, in order
func RawID(ref string) (int64, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, ref)

	if digits == "" {
		return 0, fmt.Errorf("%w: no digits in %q", ErrConversion, ref)
	}

	id, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrConversion, ref, err)
	}
	return id, nil
}

// Parse classifies a reference and extracts its id
func Parse(ref string) (Account, error) {
	id, err := RawID(ref)
	if err != nil {
		return Account{}, err
	}

	return Account{
		Ref:   ref,
		Kind:  Classify(ref),
		RawID: id,
	}, nil
}
