// Package caret provides a Go client SDK for Caret, a meeting-transcription
// service. It covers notes, tags, workspace administration, webhook
// subscription management, and verification of inbound webhook deliveries.
//
// Basic usage:
//
//	client, err := caret.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	notes, err := client.Notes.List(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, note := range notes.Notes {
//	    fmt.Println(note.Title)
//	}
//
// The API key may also come from the CARET_API_KEY environment variable,
// read once at construction:
//
//	client, err := caret.New("")
//
// Inbound webhooks are verified with a shared signing secret:
//
//	verifier, err := caret.NewWebhookVerifier("your-webhook-secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.HandleFunc("/webhooks/caret", func(w http.ResponseWriter, r *http.Request) {
//	    result := verifier.VerifyRequest(r)
//	    if !result.Valid {
//	        http.Error(w, result.Error, http.StatusUnauthorized)
//	        return
//	    }
//	    fmt.Println("event:", result.Event.Type)
//	})
package caret
