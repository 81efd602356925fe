// Package bedrock dispatches questions to foundation models on AWS Bedrock.
//
// The Dispatcher owns the call flow: build the model-specific request
// through the models registry, wrap it in a model-agnostic Call envelope,
// ask the capability port whether the model streams, then invoke either
// single-shot or through the streaming pull loop and normalize the result
// to plain text.
//
// Transport is kept behind the Invoker and CapabilityChecker ports; Client
// is the AWS-backed implementation of both, using the SDK's default
// credential chain (environment variables, IAM roles, profiles).
//
// Usage:
//
//	defaults, err := config.Load("models.yaml")
//	client, err := bedrock.NewClient(ctx, bedrock.ClientConfig{Region: "us-east-1"})
//	d := bedrock.NewDispatcher(client, client, defaults)
//	answer, err := d.Ask(ctx, "What is a glacier?", nil, models.ClaudeV3Haiku, bedrock.RunStandard)
package bedrock
