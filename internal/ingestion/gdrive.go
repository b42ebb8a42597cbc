package ingestion

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveLoader downloads indexable files from a Google Drive folder into a
// local directory so the rest of ingestion can treat them like local files.
type DriveLoader struct {
	svc *drive.Service
}

// NewDriveLoader builds a Drive client from an OAuth2 access token.
func NewDriveLoader(ctx context.Context, accessToken string) (*DriveLoader, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("missing Google Drive access token")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}
	return &DriveLoader{svc: svc}, nil
}

// Download fetches every supported file in folderID into destDir and
// returns the local paths.
func (l *DriveLoader) Download(ctx context.Context, folderID, destDir string) ([]string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	var paths []string
	pageToken := ""
	for {
		call := l.svc.Files.List().Q(query).Fields("nextPageToken, files(id, name)").Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		list, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing drive folder: %w", err)
		}
		for _, f := range list.Files {
			if !supportedName(f.Name) {
				continue
			}
			local := filepath.Join(destDir, f.Name)
			if err := l.downloadFile(ctx, f.Id, local); err != nil {
				return nil, fmt.Errorf("downloading %s: %w", f.Name, err)
			}
			paths = append(paths, local)
		}
		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}
	return paths, nil
}

func (l *DriveLoader) downloadFile(ctx context.Context, fileID, dest string) error {
	resp, err := l.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, resp.Body)
	return err
}

func supportedName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range allowedExt {
		if ext == a {
			return true
		}
	}
	return false
}
