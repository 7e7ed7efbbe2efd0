package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/pathfinder/internal/answers"
	"github.com/jonathan/pathfinder/internal/observability"
	"github.com/jonathan/pathfinder/internal/payload"
	"github.com/jonathan/pathfinder/internal/schemas"
	"github.com/jonathan/pathfinder/internal/types"
	rootschemas "github.com/jonathan/pathfinder/schemas"
)

var payloadJSON bool

var payloadCmd = &cobra.Command{
	Use:   "payload <answers.json>",
	Short: "Build and validate the analysis request for a saved answer set",
	Long:  "Loads an answer set from a JSON file, prints the normalized analysis request, and checks it against the request schema.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayload,
}

func init() {
	payloadCmd.Flags().BoolVar(&payloadJSON, "json", false, "Print the request as JSON instead of a summary")
	rootCmd.AddCommand(payloadCmd)
}

func runPayload(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("answers file not found: %s", path)
		}
		return fmt.Errorf("failed to read answers file: %w", err)
	}

	schema, err := rootschemas.Get(rootschemas.AnswerSet)
	if err != nil {
		return err
	}
	if err := schemas.ValidateJSONString(schema, string(content)); err != nil {
		return fmt.Errorf("answers file does not match schema: %w", err)
	}

	var a types.AnswerSet
	if err := json.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal answers JSON: %w", err)
	}

	store := answers.New()
	if err := store.Load(a); err != nil {
		return fmt.Errorf("invalid answers: %w", err)
	}

	req := payload.Build(store.Answers())
	printer := observability.NewPrinter(cmd.OutOrStdout())

	if payloadJSON {
		data, err := json.MarshalIndent(req, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
			return err
		}
	} else {
		printer.PrintPayload(req)
	}

	verr := payload.Validate(req)
	var ve *schemas.ValidationError
	switch {
	case verr == nil:
		printer.PrintValidation(nil)
		return nil
	case errors.As(verr, &ve):
		printer.PrintValidation(ve)
		return fmt.Errorf("payload failed validation with %d problems", len(ve.Errors))
	default:
		return fmt.Errorf("failed to validate payload: %w", verr)
	}
}
