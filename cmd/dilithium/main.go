package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"github.com/zeebo/blake3"

	"github.com/Oxedize/fe2o3-sub000/dilithium"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "dilithium",
		Usage: "Dilithium (" + dilithium.ModeName + ") key generation, signing and verification",
		Commands: []*cli.Command{
			keygenCommand(),
			signCommand(),
			verifyCommand(),
			benchCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func keygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "Generate a key pair and write the packed keys to disk",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "pub",
				Usage: "Output path for the packed public key",
				Value: "dilithium.pub",
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "Output path for the packed private key",
				Value: "dilithium.key",
			},
		},
		Action: func(c *cli.Context) error {
			pk, sk, err := dilithium.GenerateKey(nil)
			if err != nil {
				return errors.Wrap(err, "generating key pair")
			}
			if err := os.WriteFile(c.String("pub"), pk.Bytes(), 0o644); err != nil {
				return errors.Wrap(err, "writing public key")
			}
			if err := os.WriteFile(c.String("key"), sk.Bytes(), 0o600); err != nil {
				return errors.Wrap(err, "writing private key")
			}
			return nil
		},
	}
}

// digestFile hashes the file with BLAKE3; signatures cover the 32-byte
// digest rather than the raw contents.
func digestFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	sum := blake3.Sum256(data)
	return sum[:], nil
}

func loadPrivateKey(path string) (*dilithium.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var sk dilithium.PrivateKey
	if err := sk.UnmarshalBinary(data); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return &sk, nil
}

func loadPublicKey(path string) (*dilithium.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var pk dilithium.PublicKey
	if err := pk.UnmarshalBinary(data); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return &pk, nil
}

func signCommand() *cli.Command {
	return &cli.Command{
		Name:      "sign",
		Usage:     "Sign the BLAKE3 digest of a file",
		UsageText: "dilithium sign --key KEY FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Path to the packed private key",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "sig",
				Usage: "Output path for the signature (default: FILE.sig)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one file to sign")
			}
			in := c.Args().First()

			sk, err := loadPrivateKey(c.String("key"))
			if err != nil {
				return err
			}
			digest, err := digestFile(in)
			if err != nil {
				return err
			}

			out := c.String("sig")
			if out == "" {
				out = in + ".sig"
			}
			sig := dilithium.Sign(sk, digest)
			return errors.Wrap(os.WriteFile(out, sig, 0o644), "writing signature")
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Verify a signature over the BLAKE3 digest of a file",
		UsageText: "dilithium verify --pub PUB --sig SIG FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pub",
				Usage:    "Path to the packed public key",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "sig",
				Usage:    "Path to the signature",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one file to verify")
			}
			in := c.Args().First()

			pk, err := loadPublicKey(c.String("pub"))
			if err != nil {
				return err
			}
			digest, err := digestFile(in)
			if err != nil {
				return err
			}
			sig, err := os.ReadFile(c.String("sig"))
			if err != nil {
				return errors.Wrap(err, "reading signature")
			}

			if !dilithium.Verify(pk, digest, sig) {
				return errors.New("signature is not valid")
			}
			return nil
		},
	}
}
