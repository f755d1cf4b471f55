// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every error response and of the
// approve/reject success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// AppInfoResponse describes the running binary.
type AppInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
