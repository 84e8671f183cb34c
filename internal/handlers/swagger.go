package handlers

// @title Pi Auth API
// @version 1.0
// @description Exchanges a Pi Network user identifier for a Firebase custom token

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api

// @tag.name auth
// @tag.description Custom token issuance
