package gpg

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// newTestKey generates a signing entity and returns it with its armored public key
func newTestKey(t *testing.T) (*openpgp.Entity, []byte) {
	t.Helper()

	entity, err := openpgp.NewEntity("Diagram Author", "test", "author@example.com", nil)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatalf("Failed to create armor encoder: %v", err)
	}
	if err := entity.Serialize(w); err != nil {
		t.Fatalf("Failed to serialize public key: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close armor encoder: %v", err)
	}

	return entity, buf.Bytes()
}

func writeSignedFile(t *testing.T, dir string, signer *openpgp.Entity, content string) (string, string) {
	t.Helper()

	dataPath := filepath.Join(dir, "foo.urm.puml")
	if err := os.WriteFile(dataPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	var sig bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&sig, signer, strings.NewReader(content), nil); err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}

	sigPath := dataPath + ".asc"
	if err := os.WriteFile(sigPath, sig.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}

	return dataPath, sigPath
}

// Test verifying a valid armored signature
func TestVerifier_VerifySignatureFromFile_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	signer, pub := newTestKey(t)

	keyPath := filepath.Join(tmpDir, "keys.asc")
	if err := os.WriteFile(keyPath, pub, 0600); err != nil {
		t.Fatal(err)
	}

	v := NewVerifier()
	if err := v.ImportKeyFromFile(keyPath); err != nil {
		t.Fatalf("ImportKeyFromFile failed: %v", err)
	}
	if size := v.GetKeyringSize(); size != 1 {
		t.Errorf("Keyring size = %d, want 1", size)
	}

	dataPath, sigPath := writeSignedFile(t, tmpDir, signer, "@startuml\nclass Foo\n@enduml\n")

	if err := v.VerifySignatureFromFile(dataPath, sigPath); err != nil {
		t.Errorf("VerifySignatureFromFile failed: %v", err)
	}
}

// Test that a modified file no longer verifies
func TestVerifier_VerifySignatureFromFile_Tampered(t *testing.T) {
	tmpDir := t.TempDir()
	signer, pub := newTestKey(t)

	keyPath := filepath.Join(tmpDir, "keys.asc")
	if err := os.WriteFile(keyPath, pub, 0600); err != nil {
		t.Fatal(err)
	}

	v := NewVerifier()
	if err := v.ImportKeyFromFile(keyPath); err != nil {
		t.Fatal(err)
	}

	dataPath, sigPath := writeSignedFile(t, tmpDir, signer, "@startuml\nclass Foo\n@enduml\n")
	if err := os.WriteFile(dataPath, []byte("@startuml\nclass Bar\n@enduml\n"), 0600); err != nil {
		t.Fatal(err)
	}

	err := v.VerifySignatureFromFile(dataPath, sigPath)
	if err == nil {
		t.Fatal("Expected error for tampered file, got nil")
	}
	if !strings.Contains(err.Error(), "signature verification failed") {
		t.Errorf("Expected 'signature verification failed' error, got: %v", err)
	}
}

// Test that a signature from an unknown key is rejected
func TestVerifier_VerifySignatureFromFile_UnknownSigner(t *testing.T) {
	tmpDir := t.TempDir()
	_, pub := newTestKey(t)
	stranger, _ := newTestKey(t)

	keyPath := filepath.Join(tmpDir, "keys.asc")
	if err := os.WriteFile(keyPath, pub, 0600); err != nil {
		t.Fatal(err)
	}

	v := NewVerifier()
	if err := v.ImportKeyFromFile(keyPath); err != nil {
		t.Fatal(err)
	}

	dataPath, sigPath := writeSignedFile(t, tmpDir, stranger, "@startuml\n@enduml\n")

	if err := v.VerifySignatureFromFile(dataPath, sigPath); err == nil {
		t.Fatal("Expected error for signature by unknown key, got nil")
	}
}

// Test importing key from nonexistent file
func TestVerifier_ImportKeyFromFile_NonexistentFile(t *testing.T) {
	v := NewVerifier()

	err := v.ImportKeyFromFile("/nonexistent/key.asc")

	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}

	if !strings.Contains(err.Error(), "failed to open key file") {
		t.Errorf("Expected 'failed to open key file' error, got: %v", err)
	}
}

// Test importing key from file with no keys
func TestVerifier_ImportKeyFromFile_InvalidFile(t *testing.T) {
	v := NewVerifier()
	keyPath := filepath.Join(t.TempDir(), "empty.asc")
	if err := os.WriteFile(keyPath, []byte("not a gpg key"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := v.ImportKeyFromFile(keyPath); err == nil {
		t.Fatal("Expected error for invalid key file, got nil")
	}
}

// Test importing a keyring published over HTTP
func TestVerifier_ImportKeysFromURL(t *testing.T) {
	_, pub := newTestKey(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(pub)
	}))
	defer server.Close()

	v := NewVerifier()
	if err := v.ImportKeysFromURL(context.Background(), server.URL); err != nil {
		t.Fatalf("ImportKeysFromURL failed: %v", err)
	}

	if size := v.GetKeyringSize(); size != 1 {
		t.Errorf("Keyring size = %d, want 1", size)
	}
}

// Test keyring download failure
func TestVerifier_ImportKeysFromURL_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := NewVerifier().ImportKeysFromURL(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for 404 response, got nil")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("Expected status error, got: %v", err)
	}
}

// Test VerifySignatureFromFile without keys imported
func TestVerifier_VerifySignatureFromFile_NoKeysImported(t *testing.T) {
	v := NewVerifier()
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.puml")
	sigFile := filepath.Join(tmpDir, "test.puml.asc")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sigFile, []byte("fake sig"), 0600); err != nil {
		t.Fatal(err)
	}

	err := v.VerifySignatureFromFile(testFile, sigFile)

	if err == nil {
		t.Fatal("Expected error when no keys are imported, got nil")
	}

	if !strings.Contains(err.Error(), "no GPG keys imported") {
		t.Errorf("Expected 'no GPG keys imported' error, got: %v", err)
	}
}
