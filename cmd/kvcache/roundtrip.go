package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/kvcache"
)

func newRoundtripCmd(f *rootFlags) *cobra.Command {
	var kind, as string
	cmd := &cobra.Command{
		Use:   "roundtrip VALUE",
		Short: "Flush the store, write VALUE under a new key and read it back.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(kind, args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := openCache(ctx, f)
			if err != nil {
				return err
			}
			defer c.Close(ctx)
			return roundtrip(ctx, c, v, as, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "str", "Value kind: str, bytes, int or float.")
	cmd.Flags().StringVar(&as, "as", "str", "Read back as: raw, str, int or float.")
	return cmd
}

func parseValue(kind, s string) (kvcache.Value, error) {
	switch kind {
	case "str":
		return kvcache.String(s), nil
	case "bytes":
		return kvcache.Bytes([]byte(s)), nil
	case "int":
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return kvcache.Value{}, fmt.Errorf("parse int value: %w", err)
		}
		return kvcache.Int(n), nil
	case "float":
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return kvcache.Value{}, fmt.Errorf("parse float value: %w", err)
		}
		return kvcache.Float(x), nil
	default:
		return kvcache.Value{}, fmt.Errorf("unsupported kind: %q", kind)
	}
}

func roundtrip(ctx context.Context, c *kvcache.Cache, v kvcache.Value, as string, w io.Writer) error {
	key, err := c.Store(ctx, v)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	var (
		out any
		ok  bool
	)
	switch as {
	case "raw":
		var raw []byte
		raw, ok, err = c.Get(ctx, key)
		out = fmt.Sprintf("%q", raw)
	case "str":
		out, ok, err = get(c.GetStr(ctx, key))
	case "int":
		out, ok, err = get(c.GetInt(ctx, key))
	case "float":
		out, ok, err = get(c.GetFloat(ctx, key))
	default:
		return fmt.Errorf("unsupported read mode: %q", as)
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return fmt.Errorf("get %s: value vanished", key)
	}
	_, err = fmt.Fprintf(w, "key=%s value=%v\n", key, out)
	return err
}

func get[T any](v T, ok bool, err error) (any, bool, error) { return v, ok, err }
