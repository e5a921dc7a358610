package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/config"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/controllers"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/logger"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/middleware"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/routes"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/storage"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect to the database and migrate the collections
	config.InitDB()

	// Real object storage only when a bucket is configured; the simulator
	// stays in place otherwise.
	if bucket := config.GetEnv("UPLOAD_BUCKET", ""); bucket != "" {
		region := config.GetEnv("AWS_REGION", "ap-south-1")
		uploader, err := storage.NewS3Uploader(context.Background(), bucket, region)
		if err != nil {
			log.Fatalf("failed to configure S3 uploads: %v", err)
		}
		controllers.Uploads = uploader
	}

	r := routes.SetupRouter()

	// Wrap with CORS so browser clients can send the session cookies
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
