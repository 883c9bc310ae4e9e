// Package bonita is a client for the Bonita BPM REST API that launches
// process instances on behalf of external entities and completes their human
// tasks.
//
// A Client caches one session per engine. Every call goes through a single
// retry policy: when the engine answers 401 the session is refreshed once and
// the request replayed; a second 401 is returned as an *HTTPError.
//
// The mapping from (process name, entity id) to case id is kept inside the
// engine by the SYSTEM_RegisterProcess process and read back from the
// io.codecontract.core.ProcessRegistry business data class, both of which must
// be deployed.
//
//	client := bonita.New(bonita.WithRequestTimeout(10 * time.Second))
//	err := client.Connect(ctx, bonita.Settings{
//		BaseURL:  "http://localhost:8080/bonita",
//		Username: "walter.bates",
//		Password: "bpm",
//	}, "RegisterUser")
//	caseID, err := client.LaunchProcess(ctx, "RegisterUser", "7", bonita.Params{"a": 1})
//	err = client.CompleteTask(ctx, "RegisterUser", "7", "Step2-Manual", nil)
package bonita
