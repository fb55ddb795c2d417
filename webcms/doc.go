// Package webcms provides a client for the WebCMS content API.
//
// The API exposes five read endpoints (web content, events, media
// galleries, system data and the website menu) behind an API-key
// header. Create a client and call the typed fetch methods:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := webcms.NewClient("https://cms.example.com", "your-api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res := client.FetchContent(ctx, webcms.ContentFilter{
//		ContentType: "news",
//		Limit:       10,
//	})
//	if !res.OK() {
//		log.Fatal(res.Message())
//	}
//
// Fetch methods do not return Go errors. Transport failures and HTTP
// error responses come back as a Result map with "status", "message"
// and "data" keys; successful responses are the decoded server payload
// as-is. Result.OK and Result.Message distinguish the two.
//
// Endpoints without a typed method can be reached through Get and Do,
// which accept an ordered Params set. Non-GET methods send the
// parameters as a JSON body instead of a query string.
package webcms
