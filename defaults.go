package config

// registerDefaults installs the built-in attribute set at construction time.
// Override scripts may replace any of these; descriptions survive overrides.
func registerDefaults(r *Registry) {
	r.RegisterDefault(
		"additional_archive_components",
		Strings("drv", "dart"),
		"Additional components to archive.",
	)
	r.RegisterDefault(
		"verbose_run_phase",
		Bool(false),
		"If set to `True` then after a SystemTests successful run phase the elapsed time is recorded to BASELINE_ROOT, on a failure the test is checked against the previous run and potential breaking merges are listed in the testlog.",
	)
	r.RegisterDefault(
		"baseline_store_teststatus",
		Bool(true),
		"If set to `True` and GENERATE_BASELINE is set then a teststatus.log is created in the case's baseline.",
	)
	r.RegisterDefault(
		"common_sharedlibroot",
		Bool(true),
		"If set to `True` then SHAREDLIBROOT is set for the case and SystemTests will only build the shared libs once.",
	)
	r.RegisterDefault(
		"create_test_flag_mode",
		String("cesm"),
		"Sets the flag mode for the `create_test` script. When set to `cesm`, the `-c` flag will compare baselines against a give directory.",
	)
	r.RegisterDefault(
		"use_kokkos",
		Bool(false),
		"If set to `True` and CAM_TARGET is `preqx_kokkos`, `theta-l` or `theta-l_kokkos` then kokkos is built with the shared libs.",
	)
	r.RegisterDefault(
		"shared_clm_component",
		Bool(true),
		"If set to `True` and then the `clm` land component is built as a shared lib.",
	)
	r.RegisterDefault(
		"ufs_alternative_config",
		Bool(false),
		"If set to `True` and UFS_DRIVER is set to `nems` then model config dir is set to `$CIMEROOT/../src/model/NEMS/cime/cime_config`.",
	)
	r.RegisterDefault(
		"enable_smp",
		Bool(true),
		"If set to `True` then `SMP=` is added to model compile command.",
	)
	r.RegisterDefault(
		"build_model_use_cmake",
		Bool(false),
		"If set to `True` the model is built using using CMake otherwise Make is used.",
	)
	r.RegisterDefault(
		"build_cime_component_lib",
		Bool(true),
		"If set to `True` then `Filepath`, `CIME_cppdefs` and `CCSM_cppdefs` directories are copied from CASEBUILD directory to BUILDROOT in order to build CIME's internal components.",
	)
	r.RegisterDefault(
		"default_short_term_archiving",
		Bool(true),
		"If set to `True` and the case is not a test then DOUT_S is set to True and TIMER_LEVEL is set to 4.",
	)
	// TODO combine copy_e3sm_tools and copy_cesm_tools into a single variable
	r.RegisterDefault(
		"copy_e3sm_tools",
		Bool(false),
		"If set to `True` then E3SM specific tools are copied into the case directory.",
	)
	r.RegisterDefault(
		"copy_cesm_tools",
		Bool(true),
		"If set to `True` then CESM specific tools are copied into the case directory.",
	)
	r.RegisterDefault(
		"copy_cism_source_mods",
		Bool(true),
		"If set to `True` then `$CASEROOT/SourceMods/src.cism/source_cism` is created and a README is written to directory.",
	)
	r.RegisterDefault(
		"make_case_run_batch_script",
		Bool(false),
		"If set to `True` and case is not a test then `case.run.sh` is created in case directory from `$MACHDIR/template.case.run.sh`.",
	)
	r.RegisterDefault(
		"case_setup_generate_namelist",
		Bool(false),
		"If set to `True` and case is a test then namelists are created during `case.setup`.",
	)
	r.RegisterDefault(
		"create_bless_log",
		Bool(false),
		"If set to `True` and comparing test to baselines the most recent bless is added to comments.",
	)
	r.RegisterDefault(
		"allow_unsupported",
		Bool(true),
		"If set to `True` then unsupported compsets and resolutions are allowed.",
	)
	r.RegisterDefault(
		"check_machine_name_from_test_name",
		Bool(true),
		"If set to `True` then the TestScheduler will use testlists to parse for a list of tests.",
	)
	r.RegisterDefault(
		"sort_tests",
		Bool(false),
		"If set to `True` then the TestScheduler will sort tests by runtime.",
	)
	r.RegisterDefault(
		"calculate_mode_build_cost",
		Bool(false),
		"If set to `True` then the TestScheduler will set the number of processors for building the model to min(16, (($GMAKE_J * 2) / 3) + 1) otherwise it's set to 4.",
	)
	r.RegisterDefault(
		"share_exes",
		Bool(false),
		"If set to `True` then the TestScheduler will share exes between tests.",
	)
	r.RegisterDefault(
		"serialize_sharedlib_builds",
		Bool(true),
		"If set to `True` then the TestScheduler will use `proc_pool + 1` processors to build shared libraries otherwise a single processor is used.",
	)
	r.RegisterDefault(
		"use_testreporter_template",
		Bool(true),
		"If set to `True` then the TestScheduler will create `testreporter` in $CIME_OUTPUT_ROOT.",
	)
	r.RegisterDefault(
		"check_invalid_args",
		Bool(true),
		"If set to `True` then script arguments are checked for being valid.",
	)
	r.RegisterDefault(
		"test_mode",
		String("cesm"),
		"Sets the testing mode, this changes various configuration for CIME's unit and system tests.",
	)
	r.RegisterDefault(
		"xml_component_key",
		String("COMP_ROOT_DIR_{}"),
		"The string template used as the key to query the XML system to find a components root directory e.g. the template `COMP_ROOT_DIR_{}` and component `LND` becomes `COMP_ROOT_DIR_LND`.",
	)
	r.RegisterDefault(
		"set_comp_root_dir_cpl",
		Bool(true),
		"If set to `True` then COMP_ROOT_DIR_CPL is set for the case.",
	)
	r.RegisterDefault(
		"use_nems_comp_root_dir",
		Bool(false),
		"If set to `True` then COMP_ROOT_DIR_CPL is set using UFS_DRIVER if defined.",
	)
	r.RegisterDefault(
		"test_custom_project_machine",
		String("melvin"),
		"Sets the machine name to use when testing a machine with no PROJECT.",
	)
	r.RegisterDefault(
		"driver_default",
		String("nuopc"),
		"Sets the default driver for the model.",
	)
	r.RegisterDefault(
		"driver_choices",
		Strings("nuopc"),
		"Sets the available driver choices for the model.",
	)
	r.RegisterDefault(
		"mct_path",
		String("{srcroot}/libraries/mct"),
		"Sets the path to the mct library.",
	)
	r.RegisterDefault(
		"mpi_serial_path",
		String("{srcroot}/libraries/mpi-serial"),
		"Sets the path to the mpi-serial library.",
	)
}
