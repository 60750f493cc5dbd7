package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenValid_WellBeforeExpiry(t *testing.T) {
	account := &Account{AccessToken: "token", TokenExpiry: testNow.Add(time.Hour)}
	assert.True(t, account.TokenValid(testNow))
}

func TestTokenValid_WithinExpiryMargin(t *testing.T) {
	account := &Account{AccessToken: "token", TokenExpiry: testNow.Add(30 * time.Second)}
	assert.False(t, account.TokenValid(testNow))
}

func TestTokenValid_Expired(t *testing.T) {
	account := &Account{AccessToken: "token", TokenExpiry: testNow.Add(-time.Minute)}
	assert.False(t, account.TokenValid(testNow))
}

func TestTokenValid_EmptyToken(t *testing.T) {
	account := &Account{TokenExpiry: testNow.Add(time.Hour)}
	assert.False(t, account.TokenValid(testNow))
}
