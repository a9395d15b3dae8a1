package commands

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// authorize creates a Sheets service from a service account credentials file. There
// are no cached tokens to manage - the JWT config mints access tokens on demand.
func authorize(credentials string, ctx context.Context) (*sheets.Service, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file (%w)", err)
	}

	config, err := google.JWTConfigFromJSON(b, SHEETS)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account credentials (%w)", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return service, nil
}

func clear(google *sheets.Service, spreadsheetId string, ranges []string, ctx context.Context) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	if _, err := google.Spreadsheets.Values.BatchClear(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}
