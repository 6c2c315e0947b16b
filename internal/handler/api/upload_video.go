package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/vidseo/publish-ms-go/internal/logger"
	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
	"github.com/vidseo/publish-ms-go/internal/usecase/upload"
	"github.com/vidseo/publish-ms-go/internal/validation"
)

// multipartMemoryLimit is the in-memory threshold for form parsing; larger
// file parts spill to temp files.
const multipartMemoryLimit = 32 << 20

type UploadVideoRequest struct {
	Category        string `json:"category" validate:"required,oneof=tech vlog shorts gaming tutorial"`
	Language        string `json:"language" validate:"required,min=2,max=60"`
	Monetization    string `json:"monetization" validate:"required,min=2,max=80"`
	Schedule        string `json:"schedule" validate:"omitempty,scheduletime"`
	VideoSourceType string `json:"videoSourceType" validate:"required,oneof=file link"`
	VideoLink       string `json:"videoLink" validate:"omitempty,url"`
}

func UploadVideoHandler(svc port.VideoUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart form", err)
			return
		}

		req := UploadVideoRequest{
			Category:        r.FormValue("category"),
			Language:        r.FormValue("language"),
			Monetization:    r.FormValue("monetization"),
			Schedule:        r.FormValue("schedule"),
			VideoSourceType: r.FormValue("videoSourceType"),
			VideoLink:       r.FormValue("videoLink"),
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			issues := validation.ErrorsToIssues(errs)
			WriteValidationError(w, issues)
			logger.Warnf(r.Context(), "❌  Validation failed: %v", issues)
			return
		}

		in := port.UploadVideoInput{
			SourceType:   model.SourceType(req.VideoSourceType),
			Link:         req.VideoLink,
			Category:     model.Category(req.Category),
			Language:     req.Language,
			Monetization: req.Monetization,
			Schedule:     req.Schedule,
		}

		// The form may carry both a file and a link; the non-selected
		// source is silently ignored.
		if in.SourceType == model.SourceTypeFile {
			file, header, err := r.FormFile("videoFile")
			if err == nil {
				defer func() { _ = file.Close() }()
				in.File = file
				in.FileName = header.Filename
			} else if !errors.Is(err, http.ErrMissingFile) {
				WriteError(w, http.StatusBadRequest, "could not read uploaded file", err)
				return
			}
		}

		jobID := uuid.New()
		logger.Infof(r.Context(), "upload job %s: source=%s category=%s", jobID, in.SourceType, in.Category)

		out, err := svc.UploadVideo(r.Context(), in)
		if err != nil {
			writeUploadError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  upload job %s published as %q", jobID, out.Title)
	}
}

// writeUploadError translates the pipeline error taxonomy into HTTP classes:
// request defects are 400, the post-transfer size gate is 413, everything
// else is a 5xx. Internal detail stays in the logs.
func writeUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, upload.ErrSourceMissing):
		WriteError(w, http.StatusBadRequest, "the selected video source is missing", err)
	case errors.Is(err, upload.ErrSizeLimitExceeded):
		WriteError(w, http.StatusRequestEntityTooLarge, "video exceeds the maximum allowed size", err)
	case errors.Is(err, upload.ErrSourceFetchFailed):
		WriteError(w, http.StatusBadGateway, "could not fetch the remote video", err)
	case errors.Is(err, upload.ErrPublishFailed):
		WriteError(w, http.StatusInternalServerError, "could not publish the video", err)
	default:
		WriteError(w, http.StatusInternalServerError, "unexpected error while processing the upload", err)
	}
}
