// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin command-line client.
//
// Each subcommand maps onto one call of the marketplace API through an
// [adapter.MarketAdapter].
package client
