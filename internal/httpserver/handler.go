package httpserver

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Import this to execute the init function in docs.go which sets up the Swagger docs.
	_ "ledgerly-api/docs"

	authHTTP "ledgerly-api/internal/auth/delivery/http"
	authUC "ledgerly-api/internal/auth/usecase"
	categoryHTTP "ledgerly-api/internal/category/delivery/http"
	categoryPostgres "ledgerly-api/internal/category/repository/postgre"
	categoryUC "ledgerly-api/internal/category/usecase"
	groupHTTP "ledgerly-api/internal/group/delivery/http"
	groupPostgres "ledgerly-api/internal/group/repository/postgre"
	groupUC "ledgerly-api/internal/group/usecase"
	"ledgerly-api/internal/middleware"
	transactionHTTP "ledgerly-api/internal/transaction/delivery/http"
	transactionPostgres "ledgerly-api/internal/transaction/repository/postgre"
	transactionUC "ledgerly-api/internal/transaction/usecase"
	userHTTP "ledgerly-api/internal/user/delivery/http"
	userPostgres "ledgerly-api/internal/user/repository/postgre"
	userUC "ledgerly-api/internal/user/usecase"
)

const api = "/api"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories
	userRepo := userPostgres.New(srv.l, srv.db)
	groupRepo := groupPostgres.New(srv.l, srv.db)
	categoryRepo := categoryPostgres.New(srv.l, srv.db)
	transactionRepo := transactionPostgres.New(srv.l, srv.db)

	// Use cases
	authUsecase := authUC.New(srv.l, userRepo, srv.gate)
	userUsecase := userUC.New(srv.l, userRepo, groupRepo, transactionRepo)
	groupUsecase := groupUC.New(srv.l, groupRepo, userRepo)
	categoryUsecase := categoryUC.New(srv.l, categoryRepo, transactionRepo)
	transactionUsecase := transactionUC.New(srv.l, transactionRepo, userRepo, categoryRepo, groupRepo, srv.minio)

	// Handlers
	authHandler := authHTTP.New(srv.l, authUsecase, srv.gate)
	userHandler := userHTTP.New(srv.l, userUsecase, srv.gate)
	groupHandler := groupHTTP.New(srv.l, groupUsecase, srv.gate)
	categoryHandler := categoryHTTP.New(srv.l, categoryUsecase, srv.gate)
	transactionHandler := transactionHTTP.New(srv.l, transactionUsecase, groupUsecase, srv.gate)

	r := srv.gin.Group(api)
	authHandler.MapRoutes(r)
	userHandler.MapRoutes(r)
	groupHandler.MapRoutes(r)
	categoryHandler.MapRoutes(r)
	transactionHandler.MapRoutes(r)

	return nil
}
