// Command gcal-auth authorizes Google Calendar access once and writes the
// token file the service reads.
//
// Usage:
//
//	go run ./scripts/gcal-auth --credentials credentials.json --token token.json
//
// Open the printed URL, sign in, and paste the authorization code back.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"calendar-assistant/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "credentials.json", "OAuth desktop app credentials file")
	tokenPath := flag.String("token", "token.json", "Where to write the token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with your Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		log.Fatalf("Failed to write %s: %v", *tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", *tokenPath)
	fmt.Println("Restart the service so it picks up the new token.")
}
