package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/rwizi/clickatellhttp/clickatell"
	"github.com/rwizi/clickatellhttp/internal/config"
)

func main() {
	var (
		to      = flag.String("to", "", "comma-separated recipient numbers")
		message = flag.String("message", "", "message text to send")
		status  = flag.String("status", "", "query the status of this API message id instead of sending")
		balance = flag.Bool("balance", false, "print the remaining account credit and exit")
	)
	flag.Parse()

	ctx := context.Background()

	// Gateway credentials come from environment/.env, same as the API server.
	cfg := config.New()

	client, err := clickatell.Connect(ctx, clickatell.Config{
		APIID:    cfg.Gateway.APIID,
		User:     cfg.Gateway.User,
		Password: cfg.Gateway.Password,
		Secure:   cfg.Gateway.Secure,
	}, clickatell.NewHTTPFetcher(cfg.Gateway.Timeout))
	if err != nil {
		log.Fatalf("[SendSMS] Failed to connect to gateway: %v", err)
	}

	switch {
	case *balance:
		credit, err := client.Balance(ctx)
		if err != nil {
			log.Fatalf("[SendSMS] Balance query failed: %v", err)
		}
		log.Printf("[SendSMS] Remaining credit: %.2f", credit)

	case *status != "":
		code, err := client.Status(ctx, *status)
		if err != nil {
			log.Fatalf("[SendSMS] Status query failed: %v", err)
		}
		log.Printf("[SendSMS] Message %s: %s (%s)",
			*status, code, clickatell.StatusDescription(code))

	default:
		if *message == "" || *to == "" {
			flag.Usage()
			log.Fatal("[SendSMS] Both -message and -to are required to send.")
		}

		recipients := strings.Split(*to, ",")
		for i := range recipients {
			recipients[i] = strings.TrimSpace(recipients[i])
		}

		result, err := client.Send(ctx, *message, recipients)
		if err != nil {
			log.Fatalf("[SendSMS] Send failed: %v", err)
		}

		for _, s := range result.Successes {
			log.Printf("[SendSMS] Accepted: id=%s to=%s", s.APIMessageID, s.Recipient)
		}
		for _, f := range result.Failures {
			log.Printf("[SendSMS] Rejected: to=%s code=%s (%s)", f.Recipient, f.Code, f.Description)
		}

		log.Printf("[SendSMS] Done. %d accepted, %d rejected.",
			len(result.Successes), len(result.Failures))
	}
}
