// Package logging provides the leveled, timestamped, append-only line logger
// used by the scenario driver and the mcore command.
//
// The containers never log by themselves; callers that want to trace them
// hold a Logger and write around the calls.
//
// Usage:
//
//	log, err := logging.Open("last_run_output.txt", logging.WithTruncate())
//	if err != nil {
//		return err
//	}
//	defer log.Close()
//	log.Messagef(logging.LevelInfo, "inserted %d keys", n)
//	log.Info("suite finished", "passed", 12, "failed", 0)
//
// Lines look like:
//
//	2026-10-18 14:10:00 [INFO] inserted 32 keys
//
// Each call is written through to the underlying file before it returns.
// The handle is explicit: there is no package-level output stream.
package logging
