// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RoleAdmin is the only role ever issued by the gateway.
const RoleAdmin = "admin"

// Credentials is the login payload of the administrator.
//
// Both fields are structurally validated (well-formed email, password of at
// least six characters) before they are compared with the configured pair.
type Credentials struct {
	// Email is the administrator email.
	Email string `json:"email" validate:"required,email"`

	// Password is the administrator password in plain text.
	// It must never be logged.
	Password string `json:"password" validate:"required,min=6"`
}
