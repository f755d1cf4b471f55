// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token.
//
// It embeds [jwt.RegisteredClaims] for the standard iat/exp/iss claims and adds
// the administrator email and role. The role is carried for forward
// compatibility; no route currently branches on it.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`

	jwt.RegisteredClaims
}

// Token is an issued or parsed access token.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds the decoded payload.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
