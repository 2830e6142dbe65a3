package v1

import (
	"bytes"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	_ "image/gif"
	_ "image/png"

	"go-hiring-backend/internal/delivery/http/response"
	"go-hiring-backend/internal/domain"
	"go-hiring-backend/internal/storage"
	"go-hiring-backend/pkg/apperror"
	"go-hiring-backend/pkg/filecheck"
	"go-hiring-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
)

type UploadHandler struct {
	blobUC domain.BlobUsecase
}

func NewUploadHandler(protected *gin.RouterGroup, blobUC domain.BlobUsecase) {
	handler := &UploadHandler{blobUC: blobUC}

	uploads := protected.Group("/uploads")
	{
		uploads.POST("", handler.UploadStaged)
		uploads.POST("/dashboard", handler.UploadDashboard)
	}

	blobs := protected.Group("/blobs")
	{
		blobs.POST("", handler.UploadAddressed)
		blobs.GET("/:ref", handler.Download)
	}

	protected.GET("/files", handler.ServeFile)
}

// UploadStaged godoc
// @Summary      Upload a file to the staging area
// @Description  Store a file under a timestamped name. Images are downscaled before storage. Returns the path reference to persist.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    true   "File to upload"
// @Param        folder  query     string  false  "Staging folder"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /uploads [post]
func (h *UploadHandler) UploadStaged(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.Validation("file field is required"))
		return
	}

	folder := c.DefaultQuery("folder", domain.StagedFolderDefault)

	path, err := h.stageOne(c, folder, fileHeader)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "File uploaded", gin.H{"path": path})
}

// UploadDashboard godoc
// @Summary      Upload dashboard assets
// @Description  Store every file field of the form in the dashboard staging area. The response maps each field name to its path reference.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /uploads/dashboard [post]
func (h *UploadHandler) UploadDashboard(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.Error(apperror.Validation("multipart form required"))
		return
	}
	if len(form.File) == 0 {
		c.Error(apperror.Validation("no files in form"))
		return
	}

	paths := make(map[string]string, len(form.File))
	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		path, err := h.stageOne(c, domain.StagedFolderDashboard, headers[0])
		if err != nil {
			c.Error(err)
			return
		}
		paths[field] = path
	}

	response.Success(c, http.StatusOK, "Files uploaded", paths)
}

// UploadAddressed godoc
// @Summary      Upload a blob
// @Description  Store a file in the content-addressed blob store and return its reference.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /blobs [post]
func (h *UploadHandler) UploadAddressed(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.Validation("file field is required"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Upload("could not open upload", err))
		return
	}
	defer src.Close()

	info, err := h.blobUC.UploadAddressed(c.Request.Context(), fileHeader.Filename, src)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Blob stored", info)
}

// Download godoc
// @Summary      Download a blob
// @Tags         uploads
// @Produce      octet-stream
// @Param        ref  path  string  true  "Blob reference"
// @Success      200
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /blobs/{ref} [get]
func (h *UploadHandler) Download(c *gin.Context) {
	rc, info, err := h.blobUC.Download(c.Request.Context(), c.Param("ref"))
	if err != nil {
		c.Error(err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `inline; filename="`+info.Filename+`"`)
	if info.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	c.Header("Content-Type", info.ContentType)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.Log.Error("blob stream interrupted", "ref", info.Ref, "error", err)
	}
}

// ServeFile godoc
// @Summary      Serve any stored file reference
// @Description  Accepts addressed refs, staged paths and bare legacy filenames. Addressed refs redirect to the blob endpoint; the rest are served from the staging area.
// @Tags         uploads
// @Produce      octet-stream
// @Param        ref  query  string  true  "File reference"
// @Success      200
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /files [get]
func (h *UploadHandler) ServeFile(c *gin.Context) {
	reference := c.Query("ref")

	location, err := h.blobUC.Resolve(c.Request.Context(), reference)
	if err != nil {
		c.Error(err)
		return
	}

	if storage.ParseReference(reference).Kind == storage.ReferenceAddressed {
		c.Redirect(http.StatusFound, location)
		return
	}

	c.File(location)
}

// stageOne reads one multipart file, downscales it when it is an image,
// and hands it to the staging store.
func (h *UploadHandler) stageOne(c *gin.Context, folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", apperror.Upload("could not open upload", err)
	}
	defer src.Close()

	var reader io.Reader = src
	if filecheck.IsImage(fileHeader.Filename) {
		data, err := io.ReadAll(src)
		if err != nil {
			return "", apperror.Upload("could not read upload", err)
		}
		if scaled, err := downscaleImage(data, 1200, 80); err != nil {
			logger.Log.Warn("image downscale failed, storing original", "filename", fileHeader.Filename, "error", err)
			reader = bytes.NewReader(data)
		} else {
			reader = bytes.NewReader(scaled)
		}
	}

	return h.blobUC.UploadStaged(c.Request.Context(), folder, fileHeader.Filename, reader)
}

// downscaleImage caps the longest image side at maxDimension and
// re-encodes as JPEG.
func downscaleImage(data []byte, maxDimension, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	newWidth, newHeight := width, height
	if width > maxDimension || height > maxDimension {
		if width > height {
			newWidth = maxDimension
			newHeight = height * maxDimension / width
		} else {
			newHeight = maxDimension
			newWidth = width * maxDimension / height
		}
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
