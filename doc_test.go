package rapporthttp

import (
	"context"
	"fmt"
	"time"
)

func ExampleClient_Get() {
	socket := SocketFuncs{
		RequestFunc: func(env *Envelope, timeout time.Duration) Future {
			p := ChannelPromises{}.New()
			p.Resolve(Reply{"_s": 200, "_b": "pong"})
			return p
		},
	}

	client := New(socket)
	reply, err := client.Get("/ping").Timeout(time.Second).Do(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(reply.Status(), reply.Body())
	// Output: 200 pong
}

func ExampleRequest_ExpectResponse() {
	socket := SocketFuncs{
		SendFunc: func(env *Envelope) error {
			fmt.Println("sent", env.Method, env.URL)
			return nil
		},
	}

	client := New(socket)
	future := client.Post("/events").Body(map[string]any{"kind": "ping"}).ExpectResponse(false).Send()

	// Fire-and-forget success is silent: no future, no callback.
	fmt.Println("future:", future)
	// Output:
	// sent post /events
	// future: <nil>
}
