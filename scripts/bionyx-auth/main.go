// scripts/bionyx-auth/main.go
//
// Run this once to authorize the bionyx third-party API and create the token
// file the CLI refreshes from (oauth.token_file, token.json by default).
//
// Usage:
//   go run scripts/bionyx-auth/main.go
//
// It prints a login URL; sign in with the bionyx account, copy the "code"
// query parameter of the redirect, paste it here and the token is saved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2"

	"ekey-bionyx/config"
	"ekey-bionyx/internal/tokenstore"
	"ekey-bionyx/pkg/bionyx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.OAuth.ClientID == "" {
		log.Fatal("oauth.client_id is not configured")
	}

	conf := bionyx.OAuth2Config(cfg.OAuth.ClientID, cfg.OAuth.ClientSecret, cfg.OAuth.RedirectURL, cfg.OAuth.Scopes...)
	conf.Endpoint = oauth2.Endpoint{AuthURL: cfg.OAuth.AuthURL, TokenURL: cfg.OAuth.TokenURL}

	verifier := oauth2.GenerateVerifier()
	authURL := conf.AuthCodeURL("bionyx-auth", oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with your bionyx account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the code parameter of the redirect URL and press Enter: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := conf.Exchange(ctx, strings.TrimSpace(code), oauth2.VerifierOption(verifier))
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}
	if tok.RefreshToken == "" {
		log.Println("Warning: no refresh token was issued, the CLI will stop working once the access token expires")
	}

	if err := tokenstore.Save(cfg.OAuth.TokenFile, tok); err != nil {
		log.Fatalf("Failed to save token: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", cfg.OAuth.TokenFile)
	fmt.Println("Try it with:")
	fmt.Println("  go run ./cmd/bionyx systems")
}
