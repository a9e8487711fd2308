// shelf 命令行客户端：直接读写与API服务相同的存储槽
//
//	shelf list
//	shelf add --title Dune --author "Frank Herbert" --isbn 9780441013593
//	shelf rm 9780441013593
//	shelf watch            订阅目录变更事件（需要RabbitMQ）
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
