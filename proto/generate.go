// Package proto holds the service definitions. Generated Go stubs land
// under gen/prorank and are not committed.
package proto

//go:generate protoc --proto_path=. --go_out=../gen --go_opt=module=github.com/RichieRish05/ProRankAI/gen --go-grpc_out=../gen --go-grpc_opt=module=github.com/RichieRish05/ProRankAI/gen prorank/v1/prorank.proto
