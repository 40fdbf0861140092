package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/teambuilder/internal/codec"
)

const defaultBaseURL = "http://localhost:8080/"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "teamcode",
		Short:        "Encode and decode team share codes",
		SilenceUsage: true,
	}
	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newURLCmd(), newQRCmd())
	return root
}

func newEncodeCmd() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a layout JSON document into a share code",
		Long: `Reads {"mode","teams","name","description"} from file, or stdin when
the file is omitted or "-", and prints the share code. With --base the full
share link is printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			l, err := codec.UnmarshalDraft(data)
			if err != nil {
				return fmt.Errorf("parse layout: %w", err)
			}
			token, err := codec.Encode(l)
			if err != nil {
				return err
			}
			if base != "" {
				token = codec.ShareURL(base, token)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "print a share link on this base URL")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <code|url>",
		Short: "Decode a share code or share link into layout JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := codec.Decode(args[0])
			if err != nil {
				return err
			}
			data, err := codec.MarshalDraft(l)
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, data, "", "  "); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
}

func newURLCmd() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "url <code>",
		Short: "Print the share link for a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := codec.Decode(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.ShareURL(base, args[0]))
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", defaultBaseURL, "public base URL of the builder")
	return cmd
}

func newQRCmd() *cobra.Command {
	var (
		base string
		out  string
		size int
	)
	cmd := &cobra.Command{
		Use:   "qr <code|url>",
		Short: "Render the share link for a code as a PNG QR code",
		Long: `Writes the QR code to the file named by --out, or to stdout when --out
is "-". A full share link is encoded as given; a bare code is placed on --base.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := codec.Decode(args[0]); err != nil {
				return err
			}
			link := args[0]
			if !strings.Contains(link, "#") {
				link = codec.ShareURL(base, link)
			}
			img, err := codec.QRCode(link, size)
			if err != nil {
				return err
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(img)
				return err
			}
			if err := os.WriteFile(out, img, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", defaultBaseURL, "public base URL of the builder")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file")
	cmd.Flags().IntVar(&size, "size", codec.DefaultQRSize, "edge length in pixels")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}
