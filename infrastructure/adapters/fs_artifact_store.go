package adapters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/config"
	"github.com/SyedAhtsham/vistavoice-deployment/domain"
)

type fsArtifactStore struct {
	logger     outbound.LoggerPort
	outputDir  string
	scratchDir string
}

// NewFsArtifactStore keeps finished artifacts under one output
// directory and gives every run its own scratch directory, so
// concurrent runs never share file names.
func NewFsArtifactStore(logger outbound.LoggerPort, cfg *config.MediaConfig) (outbound.ArtifactStorePort, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.MkdirAll(cfg.ScratchDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	return &fsArtifactStore{
		logger:     logger,
		outputDir:  cfg.OutputDir,
		scratchDir: cfg.ScratchDir,
	}, nil
}

func (s *fsArtifactStore) CreateScratchDir(runID string) (string, error) {
	dir, err := os.MkdirTemp(s.scratchDir, "run-"+runID+"-")
	if err != nil {
		return "", fmt.Errorf("creating run scratch directory: %w", err)
	}
	return dir, nil
}

func (s *fsArtifactStore) RemoveScratchDir(dir string) {
	if dir == "" {
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		s.logger.ErrorWithFields(err, "failed to remove scratch directory", map[string]interface{}{
			"dir": dir,
		})
	}
}

func (s *fsArtifactStore) Promote(scratchPath string, fileName string) (string, error) {
	dst := filepath.Join(s.outputDir, fileName)
	if err := os.Rename(scratchPath, dst); err != nil {
		// Scratch and output may sit on different filesystems.
		if copyErr := copyFile(scratchPath, dst); copyErr != nil {
			return "", fmt.Errorf("promoting artifact: %w", copyErr)
		}
		if rmErr := os.Remove(scratchPath); rmErr != nil {
			s.logger.Error(rmErr, "failed to remove scratch artifact after copy")
		}
	}
	return dst, nil
}

func (s *fsArtifactStore) Resolve(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return "", domain.NewError(domain.ArtifactNotFound, "artifact not found: "+fileName)
	}
	path := filepath.Join(s.outputDir, fileName)
	if _, err := os.Stat(path); err != nil {
		return "", domain.WrapError(domain.ArtifactNotFound, "artifact not found: "+fileName, err)
	}
	return path, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
