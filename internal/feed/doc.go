// Package feed implements the WebSocket transport for firmware log capture
// streams.
//
// A Server republishes raw capture text to any number of WebSocket
// subscribers at the /feed endpoint, and announces itself over mDNS as a
// "_fwlog._tcp" service so consumers on the local network can find it.
// A Client subscribes to a feed URL and yields text chunks suitable for
// incremental decoding.
//
// Chunks are opaque: a feed may split the capture text at any byte
// boundary, including the middle of a hex token or timestamp. Consumers
// must therefore feed chunks into a streaming decoder session rather
// than parsing them independently.
//
// # Server Usage
//
//	srv := feed.NewServer(&feed.Config{Instance: "bench-3", Port: 9321})
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer srv.Shutdown(context.Background())
//
//	srv.Publish("ff 72 01 03 ")
//
// # Client Usage
//
//	client, err := feed.Dial(ctx, "ws://192.168.4.16:9321/feed")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	for {
//	    chunk, err := client.Next()
//	    if err != nil {
//	        break
//	    }
//	    session.Feed(chunk)
//	}
package feed
