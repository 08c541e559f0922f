package main

import (
	"context"
	"fmt"
	"io"
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"
	"go.appointy.com/gqlenum/config"
	"go.appointy.com/gqlenum/definitions"
	"go.appointy.com/gqlenum/sdl"
	"gocloud.dev/blob"
)

type command struct {
	cfg    config.Config
	stdout io.Writer

	definitions *string
	out         *string
	key         *string
}

func newCommand(cfg config.Config, stdout io.Writer) *command {
	return &command{cfg: cfg, stdout: stdout}
}

// AddTo registers the render and check commands.
func AddTo(app *kingpin.Application, c *command) {
	render := app.Command("render", "Render the definitions as SDL")
	c.definitions = render.Flag("definitions", "YAML file declaring the enums").Short('d').Required().ExistingFile()
	c.out = render.Flag("out", "Bucket URL to write to, stdout when empty").Default(c.cfg.OutputURL).String()
	c.key = render.Flag("key", "Blob key of the rendered schema").Default(c.cfg.OutputKey).String()
	render.Action(c.Render)

	check := app.Command("check", "Build and validate the definitions without writing them")
	checkDefinitions := check.Flag("definitions", "YAML file declaring the enums").Short('d').Required().ExistingFile()
	check.Action(func(_ *kingpin.ParseContext) error {
		_, err := c.build(*checkDefinitions)
		return err
	})
}

// Render writes the SDL of the definitions to stdout or to a bucket.
func (c *command) Render(_ *kingpin.ParseContext) error {
	out, err := c.build(*c.definitions)
	if err != nil {
		return err
	}

	if *c.out == "" {
		_, err = io.WriteString(c.stdout, out)
		return err
	}
	return c.write(context.Background(), *c.out, *c.key, out)
}

// build loads, builds, renders and validates the definitions in path.
func (c *command) build(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	defs, err := definitions.Load(f)
	if err != nil {
		return "", err
	}

	schema, err := defs.Schema().Build()
	if err != nil {
		return "", fmt.Errorf("building %s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"definitions": path,
		"enums":       len(schema.Enums),
	}).Info("Built enum schema")

	out := sdl.Render(schema)
	if err := sdl.Validate(out); err != nil {
		return "", fmt.Errorf("rendered schema is invalid: %w", err)
	}
	return out, nil
}

func (c *command) write(ctx context.Context, url, key, out string) error {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return fmt.Errorf("opening bucket %s: %w", url, err)
	}
	defer bucket.Close()

	if err := writeTo(ctx, bucket, key, out); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"bucket": url,
		"key":    key,
		"bytes":  len(out),
	}).Info("Wrote schema")
	return nil
}

func writeTo(ctx context.Context, bucket *blob.Bucket, key, out string) error {
	err := bucket.WriteAll(ctx, key, []byte(out), &blob.WriterOptions{ContentType: "application/graphql"})
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
