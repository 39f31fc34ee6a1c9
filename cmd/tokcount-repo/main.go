package main

import (
	"fmt"

	"github.com/temirov/tokcount/internal/cli"
	"github.com/temirov/tokcount/internal/utils"
)

// main prints the token total of the text files tracked in a git repository.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(utils.RepositoryApplicationName)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.ExecuteRepository(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
