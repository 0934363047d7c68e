// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"io"

	"github.com/kraklabs/gapscan/internal/errors"
)

const bashCompletionTemplate = `#!/bin/bash

# Bash completion script for gapscan
# Installation:
#   source <(gapscan completion bash)

_gapscan_completion() {
    local cur commands
    commands="scan records gap completion"
    cur="${COMP_WORDS[COMP_CWORD]}"

    if [ $COMP_CWORD -eq 1 ]; then
        if [[ ${cur} == -* ]] ; then
            COMPREPLY=( $(compgen -W "--version --config --json --quiet --no-color --verbose" -- ${cur}) )
        else
            COMPREPLY=( $(compgen -W "${commands}" -- ${cur}) )
        fi
        return 0
    fi

    local cmd="${COMP_WORDS[1]}"
    case "${cmd}" in
        scan)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--workers --chunk-size --metrics-addr" -- ${cur}) )
            fi
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            ;;
    esac
}

complete -F _gapscan_completion gapscan
`

const zshCompletionTemplate = `#compdef gapscan

# Zsh completion script for gapscan
# Installation:
#   gapscan completion zsh > "${fpath[1]}/_gapscan"

_gapscan() {
    local -a commands
    commands=(
        'scan:Longest binary gap over [1, N]'
        'records:Candidates that raised the maximum'
        'gap:Longest gap of individual integers'
        'completion:Generate shell completion script'
    )

    _arguments -C \
        '(- *)--version[Show version and exit]' \
        '--config[Path to config file]:config file:_files -g "*.yaml"' \
        '--json[Output as JSON]' \
        '(-q --quiet)'{-q,--quiet}'[Suppress progress output]' \
        '--no-color[Disable colored output]' \
        '*'{-v,--verbose}'[Increase log verbosity]' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                scan)
                    _arguments \
                        '(-w --workers)'{-w,--workers}'[Parallel workers]:workers:' \
                        '--chunk-size[Candidates per work chunk]:size:' \
                        '--metrics-addr[Prometheus metrics address]:address:' \
                        '1:upper bound:'
                    ;;
                records)
                    _arguments '1:upper bound:'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_gapscan
`

const fishCompletionTemplate = `# Fish completion script for gapscan
# Installation:
#   gapscan completion fish > ~/.config/fish/completions/gapscan.fish

complete -c gapscan -f -n "__fish_use_subcommand" -a "scan" -d "Longest binary gap over [1, N]"
complete -c gapscan -f -n "__fish_use_subcommand" -a "records" -d "Candidates that raised the maximum"
complete -c gapscan -f -n "__fish_use_subcommand" -a "gap" -d "Longest gap of individual integers"
complete -c gapscan -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

complete -c gapscan -l version -d "Show version and exit"
complete -c gapscan -l config -d "Path to config file" -r
complete -c gapscan -l json -d "Output as JSON"
complete -c gapscan -s q -l quiet -d "Suppress progress output"
complete -c gapscan -l no-color -d "Disable colored output"
complete -c gapscan -s v -l verbose -d "Increase log verbosity"

complete -c gapscan -n "__fish_seen_subcommand_from scan" -s w -l workers -d "Parallel workers" -r
complete -c gapscan -n "__fish_seen_subcommand_from scan" -l chunk-size -d "Candidates per work chunk" -r
complete -c gapscan -n "__fish_seen_subcommand_from scan" -l metrics-addr -d "Prometheus metrics address" -r

complete -c gapscan -n "__fish_seen_subcommand_from completion" -f -a "bash zsh fish"
`

// runCompletion writes the completion script for the requested shell.
//
//	source <(gapscan completion bash)
//	gapscan completion zsh > "${fpath[1]}/_gapscan"
//	gapscan completion fish | source
func runCompletion(args []string, w io.Writer) error {
	if len(args) != 1 {
		return errors.NewInputError(
			"Missing shell argument",
			"completion takes exactly one shell name",
			"Use one of: gapscan completion bash|zsh|fish",
		)
	}

	var script string
	switch args[0] {
	case "bash":
		script = bashCompletionTemplate
	case "zsh":
		script = zshCompletionTemplate
	case "fish":
		script = fishCompletionTemplate
	default:
		return errors.NewInputError(
			"Unsupported shell",
			fmt.Sprintf("%q is not a supported shell", args[0]),
			"Use one of: bash, zsh, fish",
		)
	}

	_, err := io.WriteString(w, script)
	return err
}
