package gateways

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"

	"github.com/ochairo/pumlsync/internal/domain/entities"
)

// setupSignedTree writes a keyring and foo/etc/foo.urm.puml with a valid signature
func setupSignedTree(t *testing.T) (root, keyring string) {
	t.Helper()

	signer, err := openpgp.NewEntity("Diagram Author", "", "author@example.com", nil)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	root = t.TempDir()
	writeTree(t, root, "foo/etc/foo.urm.puml", "bar/etc/bar.urm.puml")

	var pub bytes.Buffer
	w, err := armor.Encode(&pub, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := signer.Serialize(w); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	keyring = filepath.Join(t.TempDir(), "keys.asc")
	if err := os.WriteFile(keyring, pub.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(root, "foo", "etc", "foo.urm.puml"))
	if err != nil {
		t.Fatal(err)
	}
	var sig bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&sig, signer, bytes.NewReader(data), nil); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "foo", "etc", "foo.urm.puml.asc"), sig.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}

	return root, keyring
}

func TestSignatureGateway_VerifyDiagram(t *testing.T) {
	root, keyring := setupSignedTree(t)
	ctx := context.Background()

	gateway, err := NewSignatureGateway(ctx, keyring, root, ".asc")
	if err != nil {
		t.Fatalf("NewSignatureGateway failed: %v", err)
	}
	if gateway.GetKeyringSize() != 1 {
		t.Errorf("Keyring size = %d, want 1", gateway.GetKeyringSize())
	}

	if err := gateway.VerifyDiagram(ctx, "foo/etc/foo.urm.puml"); err != nil {
		t.Errorf("VerifyDiagram(foo) failed: %v", err)
	}

	if err := gateway.VerifyDiagram(ctx, "bar/etc/bar.urm.puml"); !errors.Is(err, entities.ErrSignatureMissing) {
		t.Errorf("VerifyDiagram(bar) error = %v, want ErrSignatureMissing", err)
	}
}

func TestSignatureGateway_VerifyDiagram_Tampered(t *testing.T) {
	root, keyring := setupSignedTree(t)
	ctx := context.Background()

	gateway, err := NewSignatureGateway(ctx, keyring, root, ".asc")
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(root, "foo", "etc", "foo.urm.puml"), []byte("@startuml\nclass Evil\n@enduml\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := gateway.VerifyDiagram(ctx, "foo/etc/foo.urm.puml"); !errors.Is(err, entities.ErrSignatureInvalid) {
		t.Errorf("VerifyDiagram error = %v, want ErrSignatureInvalid", err)
	}
}

func TestNewSignatureGateway_BadKeyring(t *testing.T) {
	_, err := NewSignatureGateway(context.Background(), "/nonexistent/keys.asc", t.TempDir(), ".asc")
	if err == nil {
		t.Fatal("Expected error for missing keyring, got nil")
	}
	if !strings.Contains(err.Error(), "failed to import GPG key") {
		t.Errorf("Unexpected error: %v", err)
	}
}
