package gateways

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/pumlsync/internal/domain/entities"
	"github.com/ochairo/pumlsync/internal/external-adapters/gpg"
)

// signatureGateway wraps the external GPG adapter to implement the domain gateway interface
type signatureGateway struct {
	verifier        *gpg.Verifier
	root            string
	signatureSuffix string
}

// NewSignatureGateway loads the keyring and returns a gateway verifying diagrams under root.
// keyring is a local file or an http(s) URL of an armored keyring.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewSignatureGateway(ctx context.Context, keyring, root, signatureSuffix string) (*signatureGateway, error) {
	verifier := gpg.NewVerifier()

	if strings.HasPrefix(keyring, "http://") || strings.HasPrefix(keyring, "https://") {
		if err := verifier.ImportKeysFromURL(ctx, keyring); err != nil {
			return nil, fmt.Errorf("failed to import GPG keys from URL: %w", err)
		}
	} else if err := verifier.ImportKeyFromFile(keyring); err != nil {
		return nil, fmt.Errorf("failed to import GPG key from file: %w", err)
	}

	return &signatureGateway{
		verifier:        verifier,
		root:            root,
		signatureSuffix: signatureSuffix,
	}, nil
}

// VerifyDiagram checks "<path><suffix>" as a detached signature of the diagram
func (g *signatureGateway) VerifyDiagram(_ context.Context, path string) error {
	dataPath := filepath.Join(g.root, filepath.FromSlash(path))
	sigPath := dataPath + g.signatureSuffix

	if _, err := os.Stat(sigPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", entities.ErrSignatureMissing, sigPath)
		}
		return fmt.Errorf("failed to stat signature %s: %w", sigPath, err)
	}

	if err := g.verifier.VerifySignatureFromFile(dataPath, sigPath); err != nil {
		return fmt.Errorf("%w: %s: %v", entities.ErrSignatureInvalid, path, err)
	}

	return nil
}

// GetKeyringSize returns the number of keys loaded
func (g *signatureGateway) GetKeyringSize() int {
	return g.verifier.GetKeyringSize()
}
