// Copyright (c) 2017-2018 The qitmeer developers

package main

import (
	"github.com/Qitmeer/phantom/core/blockdag"
	"github.com/Qitmeer/phantom/log"
)

func init() {
	blockdag.UseLogger(log.New(log.Ctx{"module": "blockdag"}))
}
