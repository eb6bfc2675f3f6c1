package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/photo"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Set a document's profile picture from an image file",
	Long:  "Validates a JPEG or PNG image, encodes it as a data URI and stores it in the document's personalInfo.profilePicture.",
	RunE:  runPhoto,
}

var (
	photoDocFile    string
	photoImageFile  string
	photoOutputFile string
)

func init() {
	photoCmd.Flags().StringVarP(&photoDocFile, "doc", "d", "", "Path to the ResumeDocument JSON file (required)")
	photoCmd.Flags().StringVar(&photoImageFile, "image", "", "Path to a JPEG or PNG image (required)")
	photoCmd.Flags().StringVarP(&photoOutputFile, "out", "o", "", "Path to write the updated document (default: overwrite --doc)")

	_ = photoCmd.MarkFlagRequired("doc")
	_ = photoCmd.MarkFlagRequired("image")
	rootCmd.AddCommand(photoCmd)
}

func runPhoto(cmd *cobra.Command, _ []string) error {
	out := photoOutputFile
	if out == "" {
		out = photoDocFile
	}

	event, err := setProfilePicture(cmd.Context(), photoDocFile, photoImageFile, out, appConfig.MaxPhotoBytes)
	if err != nil {
		return err
	}

	appLogger.Info("profile picture updated",
		zap.String("doc", out),
		zap.String("mime_type", event.MimeType),
		zap.Int64("size_bytes", event.SizeBytes),
		logger.DataURI("value", event.Value),
	)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile picture set from %s (%s, %d bytes)\n", photoImageFile, event.MimeType, event.SizeBytes)
	return nil
}

// setProfilePicture uploads imagePath and, acting as the editing store,
// patches the resulting picture into the document at docPath before
// writing it to outPath. Only personalInfo.profilePicture changes.
func setProfilePicture(ctx context.Context, docPath, imagePath, outPath string, maxBytes int64) (*types.ProfilePictureUpdated, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	raw, err := resume.ReadDocument(docPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	store := photo.DispatcherFunc(func(_ context.Context, event types.ProfilePictureUpdated) error {
		patched, err := resume.SetProfilePicture(raw, event.Value)
		if err != nil {
			return err
		}
		raw = patched
		return nil
	})

	declared := mime.TypeByExtension(filepath.Ext(imagePath))
	event, err := photo.NewUploader(store, maxBytes).Upload(ctx, filepath.Base(imagePath), declared, f)
	if err != nil {
		return nil, err
	}

	if err := resume.WriteDocument(outPath, raw); err != nil {
		return nil, err
	}
	return event, nil
}
