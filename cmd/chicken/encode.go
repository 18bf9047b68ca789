package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mnightingale/chicken"
)

func runEncode(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("encoding")
	parallel, _ := cmd.Flags().GetInt("parallel")

	encoding, err := chicken.ParseContentEncoding(name)
	if err != nil {
		return err
	}
	if encoding != chicken.EncodingChicken {
		return errors.Errorf("content encoding %v is not supported", encoding)
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, path := range args {
		log := logrus.StandardLogger().WithField("file", path)

		var n int64
		if parallel > 0 {
			n, err = encodeWhole(out, cmd.InOrStdin(), path, parallel)
		} else {
			n, err = encodeStream(out, cmd.InOrStdin(), path)
		}
		if err != nil {
			return err
		}

		log.WithField("bytes", n).Debug("encoded")
	}

	return errors.Wrap(out.Flush(), "flushing output")
}

func openInput(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return f, nil
}

func encodeStream(out io.Writer, stdin io.Reader, path string) (int64, error) {
	in, err := openInput(stdin, path)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	w := chicken.NewWriter(out)
	if _, err := io.Copy(w, in); err != nil {
		return 0, errors.Wrapf(err, "encoding %s", path)
	}
	if err := w.Close(); err != nil {
		return 0, errors.WithStack(err)
	}

	return w.Processed(), nil
}

func encodeWhole(out io.Writer, stdin io.Reader, path string, limit int) (int64, error) {
	in, err := openInput(stdin, path)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	src, err := io.ReadAll(in)
	if err != nil {
		return 0, errors.Wrapf(err, "reading %s", path)
	}

	dst := make([]byte, chicken.MaxLength(len(src)))
	n, err := chicken.EncodeParallel(dst, src, limit)
	if err != nil {
		return 0, errors.Wrapf(err, "encoding %s", path)
	}

	if _, err := out.Write(dst[:n]); err != nil {
		return 0, errors.Wrap(err, "writing output")
	}

	return int64(len(src)), nil
}
