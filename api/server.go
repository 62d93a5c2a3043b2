package api

import (
	"context"
	"fmt"
	"os"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/controllers"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/transport"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/ballot"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	codeStorage := &storage.DynamoVotingCodesStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameCodes,
	}
	voteStorage := &storage.DynamoVoteStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameVotes,
	}
	positionStorage := &storage.DynamoPositionStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNamePositions,
	}
	candidateStorage := &storage.DynamoCandidateStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameCandidates,
	}
	sessionStorage := &storage.DynamoSessionStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameSessions,
	}

	registry := ballot.NewRegistry()

	//Register controllers
	votingController := controllers.NewVotingController(codeStorage, voteStorage, positionStorage, candidateStorage)
	votingController.RegisterRoutes(r)
	sessionController := controllers.NewSessionController(codeStorage, voteStorage, positionStorage, candidateStorage, sessionStorage, registry, s.config.BallotConfig.Delays())
	sessionController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(codeStorage, voteStorage, positionStorage, candidateStorage)
	adminController.RegisterRoutes(r)
	positionMetaController := controllers.NewPositionMetaController(positionStorage)
	positionMetaController.RegisterRoutes(r)
	candidateMetaController := controllers.NewCandidateMetaController(candidateStorage)
	candidateMetaController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
