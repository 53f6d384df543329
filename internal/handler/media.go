package handler

import (
	"context"
	"net/http"

	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	"github.com/Haavardeide1/Kystobservatorene/internal/metrics"
	"github.com/Haavardeide1/Kystobservatorene/internal/utils"
	"github.com/gorilla/mux"
)

// maxMediaSize caps uploads at 50 MB, enough for short observation videos
const maxMediaSize = 50 << 20

// UploadMedia attaches a photo or video to an existing submission.
// The file goes to Cloudinary and the row is updated with the result.
func UploadMedia(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	submissionID := vars["id"]

	r.Body = http.MaxBytesReader(w, r.Body, maxMediaSize)
	if err := r.ParseMultipartForm(maxMediaSize); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid multipart body or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ctx := context.Background()

	var mediaType string
	err = database.DB.QueryRow(ctx,
		`SELECT media_type FROM submissions WHERE id=$1 AND deleted_at IS NULL`,
		submissionID,
	).Scan(&mediaType)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "submission not found")
		return
	}

	url, publicID, err := media.UploadObservationMedia(ctx, file, submissionID, mediaType)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload media", err)
		return
	}

	_, err = database.DB.Exec(ctx, `
		UPDATE submissions
		SET media_path=$2, media_url=$3, media_content_type=$4, media_size_bytes=$5, updated_at=NOW()
		WHERE id=$1
	`, submissionID, publicID, url, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save media reference", err)
		return
	}

	metrics.MediaUploads.Inc()

	utils.Success(w, map[string]interface{}{
		"mediaUrl":  url,
		"mediaPath": publicID,
	})
}
