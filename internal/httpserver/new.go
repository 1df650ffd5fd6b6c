package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"ledgerly-api/pkg/authgate"
	pkgLog "ledgerly-api/pkg/log"
	pkgMinio "ledgerly-api/pkg/minio"
)

// HTTPServer wires every module behind one gin engine. New only validates
// the dependencies; Run (in httpserver.go) starts serving.
type HTTPServer struct {
	gin  *gin.Engine
	l    pkgLog.Logger
	port int
	mode string

	db    *sql.DB
	minio pkgMinio.MinIO
	gate  *authgate.Gate
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	DB    *sql.DB
	MinIO pkgMinio.MinIO
	Gate  *authgate.Gate
}

func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:   gin.New(),
		l:     l,
		port:  cfg.Port,
		mode:  cfg.Mode,
		db:    cfg.DB,
		minio: cfg.MinIO,
		gate:  cfg.Gate,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.minio == nil {
		return errors.New("object store is required")
	}
	if srv.gate == nil {
		return errors.New("auth gate is required")
	}

	return nil
}
