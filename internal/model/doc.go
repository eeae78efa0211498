package model

// Package model defines the compression task record and its status enum. Tasks are
// held in memory by the compression service for the lifetime of the process.
