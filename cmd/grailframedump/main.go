// Command grailframedump connects to a GRAIL endpoint, performs the
// handshake for a chosen protocol, and prints every decoded frame it
// receives to stdout until the connection closes. It exists to exercise
// the framing and proto/* packages against a live peer end-to-end, in the
// spirit of the teacher's cmd/dtncat debug tool, not to implement any
// endpoint's real semantics (§1 Non-goals).
package main

import (
	"fmt"
	"net"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/grail-owl/grailnet/conn"
	"github.com/grail-owl/grailnet/proto/aggregatorsolver"
	"github.com/grail-owl/grailnet/proto/handshake"
	"github.com/grail-owl/grailnet/proto/sensoraggregator"
	"github.com/grail-owl/grailnet/proto/worldmodel"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Usage: %s <sensor|aggregator|client|solver> <address>", os.Args[0])
	}
	protoName, address := os.Args[1], os.Args[2]

	proto, err := protocolFor(protoName)
	if err != nil {
		log.Fatal(err)
	}

	stream, err := net.Dial("tcp", address)
	if err != nil {
		log.WithError(err).Fatal("grailframedump: dial failed")
	}
	c := conn.New(stream)
	defer c.Close()

	if err := c.Send(handshake.Encode(proto)); err != nil {
		log.WithError(err).Fatal("grailframedump: handshake send failed")
	}
	hsFrame, err := c.NextMessage()
	if err != nil {
		log.WithError(err).Fatal("grailframedump: handshake read failed")
	}
	peer, ok := handshake.Decode(hsFrame)
	if !ok {
		log.Fatal("grailframedump: malformed peer handshake")
	}
	fmt.Printf("handshake: peer announced %s\n", peer)

	for {
		frame, err := c.NextMessage()
		if err != nil {
			log.WithError(err).Info("grailframedump: connection ended")
			return
		}
		dumpFrame(protoName, frame)
	}
}

func protocolFor(name string) (handshake.Protocol, error) {
	switch name {
	case "sensor":
		return handshake.SensorAggregator, nil
	case "aggregator":
		return handshake.AggregatorSolver, nil
	case "client":
		return handshake.WorldModelClient, nil
	case "solver":
		return handshake.WorldModelSolver, nil
	default:
		return "", fmt.Errorf("grailframedump: unknown protocol %q", name)
	}
}

func dumpFrame(protoName string, frame []byte) {
	switch protoName {
	case "sensor":
		s := sensoraggregator.DecodeSample(frame)
		fmt.Printf("sample valid=%v phy=%d tx=%s rx=%s rss=%v\n", s.Valid, s.PhysicalLayer, s.TxID, s.RxID, s.RSS)

	case "aggregator":
		if len(frame) < 5 {
			fmt.Println("malformed aggregator-solver frame")
			return
		}
		switch aggregatorsolver.Tag(frame[4]) {
		case aggregatorsolver.TagServerSample:
			s := aggregatorsolver.DecodeServerSample(frame)
			fmt.Printf("server_sample valid=%v phy=%d tx=%s rss=%v\n", s.Valid, s.PhysicalLayer, s.TxID, s.RSS)
		case aggregatorsolver.TagSubscriptionResponse:
			sub := aggregatorsolver.DecodeSubscriptionResponse(frame)
			fmt.Printf("subscription_response rules=%d\n", len(sub))
		case aggregatorsolver.TagDevicePosition:
			p, ok := aggregatorsolver.DecodeDevicePosition(frame)
			fmt.Printf("device_position ok=%v lat=%v lon=%v\n", ok, p.Latitude, p.Longitude)
		case aggregatorsolver.TagBufferOverrun:
			fmt.Println("buffer_overrun")
		case aggregatorsolver.TagKeepAlive:
			fmt.Println("keep_alive")
		default:
			fmt.Printf("tag=%d (%d bytes)\n", frame[4], len(frame))
		}

	case "client":
		if len(frame) < 5 {
			fmt.Println("malformed client frame")
			return
		}
		switch worldmodel.ClientTag(frame[4]) {
		case worldmodel.ClientDataResponse:
			dr, ok := worldmodel.DecodeDataResponse(frame)
			fmt.Printf("data_response ok=%v ticket=%d uri=%q attrs=%d\n", ok, dr.Ticket, dr.Data.ObjectURI, len(dr.Data.Attributes))
		case worldmodel.ClientURIResponse:
			uris, ok := worldmodel.DecodeURIResponse(frame)
			fmt.Printf("uri_response ok=%v uris=%v\n", ok, uris)
		case worldmodel.ClientRequestComplete:
			ticket, ok := worldmodel.DecodeRequestComplete(frame)
			fmt.Printf("request_complete ok=%v ticket=%d\n", ok, ticket)
		case worldmodel.ClientKeepAlive:
			fmt.Println("keep_alive")
		default:
			fmt.Printf("tag=%d (%d bytes)\n", frame[4], len(frame))
		}

	case "solver":
		if len(frame) < 5 {
			fmt.Println("malformed solver frame")
			return
		}
		switch worldmodel.SolverTag(frame[4]) {
		case worldmodel.SolverStartOnDemand:
			entries := worldmodel.DecodeStartOnDemand(frame)
			fmt.Printf("start_on_demand entries=%d\n", len(entries))
		case worldmodel.SolverStopOnDemand:
			entries := worldmodel.DecodeStopOnDemand(frame)
			fmt.Printf("stop_on_demand entries=%d\n", len(entries))
		case worldmodel.SolverKeepAlive:
			fmt.Println("keep_alive")
		default:
			fmt.Printf("tag=%d (%d bytes)\n", frame[4], len(frame))
		}
	}
}
