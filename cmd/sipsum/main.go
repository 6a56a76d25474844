// sipsum prints SipHash checksums of files, in the spirit of md5sum.
//
// The key is taken from --key as 32 hex characters, or derived from a
// passphrase and salt with scrypt. Reading from stdin is supported by
// passing "-" or no file arguments at all.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/crypto/scrypt"

	"github.com/whitfin/siphash"
)

func main() {
	app := cli.NewApp()
	app.Name = "sipsum"
	app.Usage = "Print keyed SipHash checksums of files"
	app.Version = "1.0.0"
	app.ArgsUsage = "[files...]"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "key,k",
			Usage:  "Hash key as 32 hex characters",
			EnvVar: "SIPSUM_KEY",
		},
		cli.StringFlag{
			Name:   "passphrase,p",
			Usage:  "Derive the hash key from a passphrase instead of --key",
			EnvVar: "SIPSUM_PASSPHRASE",
		},
		cli.StringFlag{
			Name:   "salt,s",
			Usage:  "Salt for the passphrase derivation",
			EnvVar: "SIPSUM_SALT",
		},
		cli.IntFlag{
			Name:  "c",
			Usage: "Compression rounds per block",
			Value: siphash.DefaultC,
		},
		cli.IntFlag{
			Name:  "d",
			Usage: "Finalization rounds",
			Value: siphash.DefaultD,
		},
		cli.BoolFlag{
			Name:  "upper,u",
			Usage: "Print checksums in uppercase hex",
		},
	}

	app.Action = handleSum

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("sipsum: %v", err)
	}
}

func handleSum(ctx *cli.Context) error {
	key, err := resolveKey(
		ctx.String("key"),
		ctx.String("passphrase"),
		ctx.String("salt"),
	)
	if err != nil {
		return err
	}

	format := siphash.HexString
	if ctx.Bool("upper") {
		format = siphash.HexStringUpper
	}

	names := ctx.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	failures := 0
	for _, name := range names {
		sum, err := sumInput(name, key, ctx.Int("c"), ctx.Int("d"))
		if err != nil {
			log.Errorf("sipsum: %v", err)
			failures++
			continue
		}
		fmt.Printf("%s  %s\n", format(sum), name)
	}

	if failures > 0 {
		return cli.NewExitError(
			fmt.Sprintf("sipsum: %d of %d inputs failed", failures, len(names)),
			1,
		)
	}
	return nil
}

// sumInput hashes one file, or stdin when name is "-".
func sumInput(name string, key []byte, c, d int) (uint64, error) {
	digest, err := siphash.NewRounds(key, c, d)
	if err != nil {
		return 0, errors.Wrap(err, "creating digest")
	}

	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	if _, err := io.Copy(digest, r); err != nil {
		return 0, errors.Wrapf(err, "reading %s", name)
	}
	return digest.Sum64(), nil
}

// resolveKey turns the key flags into 16 key bytes. Exactly one of keyHex
// and passphrase must be given; passphrase mode needs a salt so that sums
// stay reproducible across runs.
func resolveKey(keyHex, passphrase, salt string) ([]byte, error) {
	switch {
	case keyHex != "" && passphrase != "":
		return nil, errors.New("--key and --passphrase are mutually exclusive")
	case keyHex != "":
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, errors.Wrap(err, "decoding key")
		}
		if len(key) != siphash.KeySize {
			return nil, errors.Errorf(
				"key must be %d hex characters, have %d",
				2*siphash.KeySize, len(keyHex),
			)
		}
		return key, nil
	case passphrase != "":
		if salt == "" {
			return nil, errors.New("--passphrase requires --salt")
		}
		key, err := scrypt.Key([]byte(passphrase), []byte(salt), 16384, 8, 1, siphash.KeySize)
		if err != nil {
			return nil, errors.Wrap(err, "deriving key")
		}
		return key, nil
	default:
		return nil, errors.New("no key material: pass --key or --passphrase")
	}
}
