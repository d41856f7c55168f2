// Command lambda serves /api/data and /api/pending behind API Gateway.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/yuribeats/the-boards/config"
	boardshttp "github.com/yuribeats/the-boards/http"
	"github.com/yuribeats/the-boards/utils"
)

func main() {
	_ = godotenv.Load()

	app, err := boardshttp.NewApp(context.Background(), config.FromEnv())
	if err != nil {
		utils.Error("lambda init: %v", err)
		utils.Sync()
		os.Exit(1)
	}
	defer app.Close()

	lambda.Start(boardshttp.LambdaHandler(boardshttp.NewRouter(app)))
}
