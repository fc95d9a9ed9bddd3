package auth

import "strings"

// PhoneAllowlist is the fixed set of phone numbers that may hold the owner role.
type PhoneAllowlist struct {
	phones map[string]struct{}
}

func NewPhoneAllowlist(phones []string) *PhoneAllowlist {
	a := &PhoneAllowlist{phones: make(map[string]struct{}, len(phones))}
	for _, p := range phones {
		if p = strings.TrimSpace(p); p != "" {
			a.phones[p] = struct{}{}
		}
	}
	return a
}

func (a *PhoneAllowlist) Contains(phone string) bool {
	if a == nil {
		return false
	}
	_, ok := a.phones[strings.TrimSpace(phone)]
	return ok
}
