package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cosmosdb-go/rntbd/projector"
	"github.com/cosmosdb-go/rntbd/request"
)

// jsonRequest is the stdin shape for `rntbdcat encode`: a plain, directly
// unmarshalable mirror of request.Request, since Headers and Content need
// JSON-friendly representations. Headers arrive as a plain JSON object;
// encoding/json gives no ordering guarantee over its keys, which is fine
// here since wire order comes from the registry, not insertion order.
type jsonRequest struct {
	OperationType   string            `json:"operationType"`
	ResourceType    string            `json:"resourceType"`
	ResourceID      string            `json:"resourceId"`
	ResourceAddress string            `json:"resourceAddress"`
	IsNameBased     bool              `json:"isNameBased"`
	ReplicaPath     string            `json:"replicaPath"`
	ContentBase64   string            `json:"contentBase64"`
	Headers         map[string]string `json:"headers"`
	Continuation    string            `json:"continuation"`
}

var strictBooleans bool

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Project a JSON request description into an RNTBD header frame",
		Long: `encode reads a JSON-described request from stdin, runs it through the
Projector and HeaderStream, and writes the resulting binary frame to
stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd)
		},
	}
	cmd.Flags().BoolVar(&strictBooleans, "strict-booleans", false,
		"reject malformed boolean header values instead of coercing to false")
	return cmd
}

func runEncode(cmd *cobra.Command) error {
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var jr jsonRequest
	if err := json.Unmarshal(raw, &jr); err != nil {
		return fmt.Errorf("parse request json: %w", err)
	}

	req, err := toRequest(jr)
	if err != nil {
		return err
	}

	opts := projector.DefaultOptions()
	opts.StrictBooleans = strictBooleans

	stream, err := projector.Project(req, opts)
	if err != nil {
		return fmt.Errorf("project request: %w", err)
	}

	if err := stream.Encode(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("encode stream: %w", err)
	}
	return nil
}

func toRequest(jr jsonRequest) (*request.Request, error) {
	op, ok := opTypeByName[jr.OperationType]
	if !ok {
		return nil, fmt.Errorf("unknown operationType %q", jr.OperationType)
	}
	res, ok := resTypeByName[jr.ResourceType]
	if !ok {
		return nil, fmt.Errorf("unknown resourceType %q", jr.ResourceType)
	}

	req := request.New(op, res)
	req.ResourceID = jr.ResourceID
	req.ResourceAddress = jr.ResourceAddress
	req.IsNameBased = jr.IsNameBased
	req.ReplicaPath = jr.ReplicaPath
	req.Continuation = jr.Continuation

	if jr.ContentBase64 != "" {
		decoded, err := decodeContentBase64(jr.ContentBase64)
		if err != nil {
			return nil, fmt.Errorf("decode contentBase64: %w", err)
		}
		req.Content = decoded
	}

	for name, value := range jr.Headers {
		req.Headers.Set(name, value)
	}

	return req, nil
}
