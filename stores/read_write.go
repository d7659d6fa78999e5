package stores

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/vars"
)

type DocumentPath string

func (DocumentPath) ConfigExpr() string {
	return "document_path"
}

var _ configs.Configurable = DocumentPath("")

var documentFlag = cmds.Var[string]("-doc")

func (Module) DocumentPath(
	loader configs.Loader,
) DocumentPath {
	return DocumentPath(vars.FirstNonZero(
		*documentFlag,
		configs.First[string](loader, "document_path"),
		"duet.star",
	))
}

//go:embed seed.star
var seedDocument string

// ReadDocument reads the durably persisted document. A missing file
// surfaces as fs.ErrNotExist.
type ReadDocument func() (string, error)

// WriteDocument commits content with a same-directory tmp file and
// rename, so a crashed write never leaves a partial document.
type WriteDocument func(content string) error

// EnsureDocument reads the document, seeding it with the embedded
// default on first run.
type EnsureDocument func() (string, error)

func (Module) ReadWrite(
	path DocumentPath,
	logger logs.Logger,
) (ReadDocument, WriteDocument, EnsureDocument) {

	read := ReadDocument(func() (string, error) {
		content, err := os.ReadFile(string(path))
		if err != nil {
			return "", err
		}
		return string(content), nil
	})

	write := WriteDocument(func(content string) error {
		dir := filepath.Dir(string(path))
		tmpPath := filepath.Join(dir, fmt.Sprintf(
			".%s.%d.tmp",
			filepath.Base(string(path)),
			rand.Int64(),
		))
		if err := os.WriteFile(tmpPath, []byte(content), 0644); err != nil {
			return err
		}
		if err := os.Rename(tmpPath, string(path)); err != nil {
			os.Remove(tmpPath)
			return err
		}
		return nil
	})

	ensure := EnsureDocument(func() (string, error) {
		content, err := read()
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		logger.Info("seeding document",
			"path", string(path),
		)
		if err := write(seedDocument); err != nil {
			return "", err
		}
		return seedDocument, nil
	})

	return read, write, ensure
}
