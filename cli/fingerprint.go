package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/go-errors/errors"
	"github.com/iqoption/yabs-frames/common/frames"
	"github.com/iqoption/yabs-frames/common/langs"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	ORDER = `pre_context_order`
)

type fingerprinted struct {
	Fingerprint string        `json:"fingerprint,omitempty"`
	Frame       *frames.Frame `json:"frame,omitempty"`
	Error       string        `json:"error,omitempty"`
}

func FingerprintCommand() *cli.Command {
	return &cli.Command{
		Name:      "fingerprint",
		Aliases:   []string{"fp"},
		Usage:     "print canonical frames and fingerprints of a json array of frames",
		ArgsUsage: "<file|->",
		Action:    fingerprint,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  ORDER,
				Value: "reverse",
			},
		},
	}
}

func fingerprint(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("Empty file, use - for stdin")
	}

	order, ok := frames.ParsePreContextOrder(c.String(ORDER))
	if !ok {
		return errors.Errorf("Unknown %s %q", ORDER, c.String(ORDER))
	}

	data, err := readInput(c.Args().Get(0))
	if err != nil {
		return err
	}

	var raw []json.RawMessage
	err = json.Unmarshal(data, &raw)
	if err != nil {
		return errors.WrapPrefix(err, "input must be a json array of frames", 0)
	}

	adapters, errs := langs.DecodeAll(raw, langs.Options{PreContextOrder: order})

	enc := json.NewEncoder(c.App.Writer)
	for i, a := range adapters {
		var out fingerprinted
		if errs[i] != nil {
			log.WithFields(log.Fields{
				"index": i,
				"error": errs[i],
			}).Warning("Can't decode frame")
			out.Error = errs[i].Error()
		} else {
			frame := a.ToCanonicalFrame()
			out.Fingerprint = a.FrameId()
			out.Frame = &frame
		}

		err = enc.Encode(&out)
		if err != nil {
			return err
		}
	}

	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
