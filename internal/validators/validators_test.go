package validators

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsClock(t *testing.T) {
	assert.True(t, IsClock("09:30"))
	assert.True(t, IsClock("23:59"))
	assert.False(t, IsClock("9:30"))
	assert.False(t, IsClock("24:00"))
	assert.False(t, IsClock("09h30"))
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2025-02-28"))
	assert.False(t, IsISODate("2025-02-30"))
	assert.False(t, IsISODate("28/02/2025"))
}

func TestRegisterBindsCustomTags(t *testing.T) {
	require.NoError(t, Register())

	type req struct {
		Time string `binding:"required,hhmm"`
		Date string `binding:"required,isodate"`
	}

	assert.NoError(t, binding.Validator.ValidateStruct(req{Time: "10:00", Date: "2025-01-02"}))
	assert.Error(t, binding.Validator.ValidateStruct(req{Time: "10", Date: "2025-01-02"}))
	assert.Error(t, binding.Validator.ValidateStruct(req{Time: "10:00", Date: "02-01-2025"}))
}

type stubResolver struct {
	mx    map[string]bool
	hosts map[string]bool
}

func (s stubResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if s.mx[name] {
		return []*net.MX{{Host: "mx." + name, Pref: 10}}, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
}

func (s stubResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	if s.hosts[host] {
		return []string{"203.0.113.7"}, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

func TestEmailDomainChecker(t *testing.T) {
	check := EmailDomainChecker(stubResolver{
		mx:    map[string]bool{"gmail.com": true},
		hosts: map[string]bool{"barbearia.com.br": true},
	}, time.Second)

	assert.True(t, check("ze@gmail.com"))
	assert.True(t, check("ze@GMAIL.com"))
	assert.True(t, check("contato@barbearia.com.br"))
	assert.False(t, check("ze@naoexiste.invalid"))
	assert.False(t, check("sem-arroba"))
	assert.False(t, check("@gmail.com"))
	assert.False(t, check("ze@"))
}
