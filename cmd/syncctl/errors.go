package main

import "errors"

var errDriftDetected = errors.New("drift detected")
