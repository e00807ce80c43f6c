// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Admin is the single privileged principal class of the marketplace.
// Admins are provisioned once and never mutated by the authentication code;
// they can only be created or deleted.
type Admin struct {
	// AdminID is the server-assigned identifier. It becomes the "sub" claim
	// of every token issued to the admin.
	AdminID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash is the salted bcrypt hash of the admin's secret.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the provisioning timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}

// Credentials is the login request body. Lengths are not capped here: an
// oversized field fails like any other wrong credential.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminInput is the admin creation request body. bcrypt reads at most 72
// bytes of a secret.
type AdminInput struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}
